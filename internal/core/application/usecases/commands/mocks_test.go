package commands_test

import (
	"context"

	"crown/internal/core/application/usecases/commands"
	"crown/internal/core/domain/model/delivery"
	"crown/internal/core/ports"
	"crown/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Save(ctx context.Context, d *delivery.Delivery) (*delivery.Delivery, error) {
	args := m.Called(ctx, d)
	saved, _ := args.Get(0).(*delivery.Delivery)
	return saved, args.Error(1)
}

func (m *MockDeliveryRepository) FindAll(
	ctx context.Context,
	req pagination.PageRequest,
) (pagination.Page[*delivery.Delivery], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pagination.Page[*delivery.Delivery]), args.Error(1)
}

func (m *MockDeliveryRepository) FindByID(ctx context.Context, id string) (*delivery.Delivery, bool, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Bool(1), args.Error(2)
}

func (m *MockDeliveryRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func newTestDelivery(id string) *delivery.Delivery {
	attrs := delivery.Attributes{
		OrderNumber: "ORD-1",
		Recipient:   "Jane Doe",
		Address:     "1 Main St",
		Status:      delivery.Pending,
	}
	if id == "" {
		d, err := delivery.NewDelivery(attrs)
		if err != nil {
			panic(err)
		}
		return d
	}
	d, err := delivery.RestoreDelivery(id, attrs)
	if err != nil {
		panic(err)
	}
	return d
}
