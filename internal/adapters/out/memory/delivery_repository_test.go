package memory_test

import (
	"context"
	"testing"
	"time"

	"crown/internal/adapters/out/memory"
	"crown/internal/core/domain/model/delivery"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/pagination"

	"github.com/stretchr/testify/suite"
)

type DeliveryRepositoryTestSuite struct {
	suite.Suite
	repository *memory.DeliveryRepository
}

func (suite *DeliveryRepositoryTestSuite) SetupTest() {
	suite.repository = memory.NewDeliveryRepository()
}

func (suite *DeliveryRepositoryTestSuite) TestSave_NewDelivery_AssignsID() {
	ctx := suite.T().Context()

	saved, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", "Alice"))
	suite.Require().NoError(err)
	suite.True(saved.HasID())

	found, ok, err := suite.repository.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("ORD-1", found.OrderNumber())
}

func (suite *DeliveryRepositoryTestSuite) TestSave_ExistingID_ReplacesAllAttributes() {
	ctx := suite.T().Context()

	saved, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", "Alice"))
	suite.Require().NoError(err)

	replacement, err := delivery.RestoreDelivery(saved.ID(), delivery.Attributes{
		OrderNumber: "ORD-1",
		Recipient:   "Bob",
		Address:     "2 Elm St",
		Status:      delivery.Delivered,
	})
	suite.Require().NoError(err)

	updated, err := suite.repository.Save(ctx, replacement)
	suite.Require().NoError(err)
	suite.Equal(saved.ID(), updated.ID())

	found, ok, err := suite.repository.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("Bob", found.Recipient())
	suite.Equal(delivery.Delivered, found.Status())
	suite.Empty(found.Courier())

	page := suite.findAll(0, 20)
	suite.EqualValues(1, page.TotalElements)
}

func (suite *DeliveryRepositoryTestSuite) TestSave_UnknownID_Inserts() {
	ctx := suite.T().Context()

	d, err := delivery.RestoreDelivery("external-7", suite.newDelivery("ORD-7", "Eve").Attributes())
	suite.Require().NoError(err)

	saved, err := suite.repository.Save(ctx, d)
	suite.Require().NoError(err)
	suite.Equal("external-7", saved.ID())
}

func (suite *DeliveryRepositoryTestSuite) TestSave_NotConstructed_Fails() {
	_, err := suite.repository.Save(suite.T().Context(), &delivery.Delivery{})
	suite.Require().ErrorIs(err, delivery.ErrDeliveryIsNotConstructed)
}

func (suite *DeliveryRepositoryTestSuite) TestFindByID_Missing() {
	found, ok, err := suite.repository.FindByID(suite.T().Context(), "missing")
	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(found)
}

func (suite *DeliveryRepositoryTestSuite) TestDeleteByID_RemovesAndToleratesMissing() {
	ctx := suite.T().Context()

	saved, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", "Alice"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteByID(ctx, saved.ID()))
	_, ok, err := suite.repository.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.False(ok)

	suite.Require().NoError(suite.repository.DeleteByID(ctx, saved.ID()))
}

func (suite *DeliveryRepositoryTestSuite) TestFindAll_Paging() {
	for _, number := range []string{"ORD-3", "ORD-1", "ORD-5", "ORD-2", "ORD-4"} {
		_, err := suite.repository.Save(suite.T().Context(), suite.newDelivery(number, "Alice"))
		suite.Require().NoError(err)
	}

	sort := []pagination.Order{{Property: delivery.PropertyOrderNumber, Direction: pagination.Asc}}
	req, err := pagination.NewPageRequest(1, 2, 0, sort)
	suite.Require().NoError(err)

	page, err := suite.repository.FindAll(suite.T().Context(), req)
	suite.Require().NoError(err)
	suite.EqualValues(5, page.TotalElements)
	suite.Equal(3, page.TotalPages())
	suite.Require().Len(page.Content, 2)
	suite.Equal("ORD-3", page.Content[0].OrderNumber())
	suite.Equal("ORD-4", page.Content[1].OrderNumber())

	req, err = pagination.NewPageRequest(7, 2, 0, sort)
	suite.Require().NoError(err)
	page, err = suite.repository.FindAll(suite.T().Context(), req)
	suite.Require().NoError(err)
	suite.Empty(page.Content)
	suite.EqualValues(5, page.TotalElements)
}

func (suite *DeliveryRepositoryTestSuite) TestFindAll_MultiPropertySort() {
	ctx := suite.T().Context()
	for _, p := range []struct{ number, recipient string }{
		{"ORD-1", "Carol"},
		{"ORD-2", "Alice"},
		{"ORD-3", "Carol"},
	} {
		_, err := suite.repository.Save(ctx, suite.newDelivery(p.number, p.recipient))
		suite.Require().NoError(err)
	}

	req, err := pagination.NewPageRequest(0, 10, 0, []pagination.Order{
		{Property: delivery.PropertyRecipient, Direction: pagination.Asc},
		{Property: delivery.PropertyOrderNumber, Direction: pagination.Desc},
	})
	suite.Require().NoError(err)

	page, err := suite.repository.FindAll(ctx, req)
	suite.Require().NoError(err)

	numbers := make([]string, 0, len(page.Content))
	for _, d := range page.Content {
		numbers = append(numbers, d.OrderNumber())
	}
	suite.Equal([]string{"ORD-2", "ORD-3", "ORD-1"}, numbers)
}

func (suite *DeliveryRepositoryTestSuite) TestFindAll_UnsetTimesSortLast() {
	ctx := suite.T().Context()
	scheduled := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	withoutTime, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", "Alice"))
	suite.Require().NoError(err)

	attrs := suite.newDelivery("ORD-2", "Bob").Attributes()
	attrs.ScheduledAt = &scheduled
	d, err := delivery.NewDelivery(attrs)
	suite.Require().NoError(err)
	withTime, err := suite.repository.Save(ctx, d)
	suite.Require().NoError(err)

	req, err := pagination.NewPageRequest(0, 10, 0, []pagination.Order{
		{Property: delivery.PropertyScheduledAt, Direction: pagination.Asc},
	})
	suite.Require().NoError(err)

	page, err := suite.repository.FindAll(ctx, req)
	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 2)
	suite.Equal(withTime.ID(), page.Content[0].ID())
	suite.Equal(withoutTime.ID(), page.Content[1].ID())
}

func (suite *DeliveryRepositoryTestSuite) TestFindAll_UnknownSortProperty() {
	req, err := pagination.NewPageRequest(0, 10, 0, []pagination.Order{{Property: "weight"}})
	suite.Require().NoError(err)

	_, err = suite.repository.FindAll(suite.T().Context(), req)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *DeliveryRepositoryTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(suite.T().Context())
	cancel()

	_, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", "Alice"))
	suite.Require().ErrorIs(err, context.Canceled)
}

func (suite *DeliveryRepositoryTestSuite) newDelivery(orderNumber, recipient string) *delivery.Delivery {
	d, err := delivery.NewDelivery(delivery.Attributes{
		OrderNumber: orderNumber,
		Recipient:   recipient,
		Address:     "1 Main St",
		Status:      delivery.Pending,
		Courier:     "courier-1",
	})
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryTestSuite) findAll(page, size int) pagination.Page[*delivery.Delivery] {
	req, err := pagination.NewPageRequest(page, size, 0, nil)
	suite.Require().NoError(err)
	result, err := suite.repository.FindAll(suite.T().Context(), req)
	suite.Require().NoError(err)
	return result
}

func TestDeliveryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryTestSuite))
}
