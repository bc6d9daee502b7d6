package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"crown/internal/adapters/out/postgres/deliveryrepo"
	"crown/internal/core/domain/model/delivery"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite runs the GORM repository against a PostgreSQL container.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSave_NewDelivery_GeneratesIDAndTracks() {
	ctx := context.Background()

	saved, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", delivery.Pending))
	suite.Require().NoError(err)
	suite.True(saved.HasID())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", saved.ID(), saved)
	suite.assertDeliveryCount(1)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSave_RoundTripsAllColumns() {
	ctx := context.Background()
	scheduled := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	delivered := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)

	d, err := delivery.NewDelivery(delivery.Attributes{
		OrderNumber: "ORD-9",
		Recipient:   "Alice",
		Address:     "1 Main St",
		Status:      delivery.Delivered,
		Courier:     "courier-3",
		ScheduledAt: &scheduled,
		DeliveredAt: &delivered,
	})
	suite.Require().NoError(err)

	saved, err := suite.repository.Save(ctx, d)
	suite.Require().NoError(err)

	found, ok, err := suite.repository.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Equal(saved.Attributes(), found.Attributes())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSave_ExistingID_Upserts() {
	ctx := context.Background()

	saved, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", delivery.Pending))
	suite.Require().NoError(err)

	replacement, err := delivery.RestoreDelivery(saved.ID(), delivery.Attributes{
		OrderNumber: "ORD-1",
		Recipient:   "Bob",
		Address:     "9 Oak Ave",
		Status:      delivery.InTransit,
	})
	suite.Require().NoError(err)

	_, err = suite.repository.Save(ctx, replacement)
	suite.Require().NoError(err)
	suite.assertDeliveryCount(1)

	found, ok, err := suite.repository.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Equal("Bob", found.Recipient())
	suite.Equal(delivery.InTransit, found.Status())
	suite.Empty(found.Courier())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestStatusCheckConstraint() {
	err := suite.db.Exec(
		"INSERT INTO deliveries (id, order_number, recipient, address, status) VALUES ('x', 'o', 'r', 'a', 'LOST')",
	).Error
	suite.Require().Error(err)

	pe, ok := deliveryrepo.AsPgError(err)
	suite.Require().True(ok)
	suite.Equal(deliveryrepo.CheckViolationCode, pe.Code)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSave_NotConstructed() {
	_, err := suite.repository.Save(context.Background(), &delivery.Delivery{})
	suite.Require().ErrorIs(err, delivery.ErrDeliveryIsNotConstructed)
	suite.assertDeliveryCount(0)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestFindByID_Missing() {
	found, ok, err := suite.repository.FindByID(context.Background(), "missing")
	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(found)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestFindAll_PagesAndSorts() {
	ctx := context.Background()
	for _, number := range []string{"ORD-3", "ORD-1", "ORD-5", "ORD-2", "ORD-4"} {
		_, err := suite.repository.Save(ctx, suite.newDelivery(number, delivery.Pending))
		suite.Require().NoError(err)
	}

	req, err := pagination.NewPageRequest(0, 2, 0, []pagination.Order{
		{Property: delivery.PropertyOrderNumber, Direction: pagination.Desc},
	})
	suite.Require().NoError(err)

	page, err := suite.repository.FindAll(ctx, req)
	suite.Require().NoError(err)
	suite.EqualValues(5, page.TotalElements)
	suite.Equal(3, page.TotalPages())
	suite.Require().Len(page.Content, 2)
	suite.Equal("ORD-5", page.Content[0].OrderNumber())
	suite.Equal("ORD-4", page.Content[1].OrderNumber())

	req, err = pagination.NewPageRequest(2, 2, 0, req.Sort())
	suite.Require().NoError(err)

	page, err = suite.repository.FindAll(ctx, req)
	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 1)
	suite.Equal("ORD-1", page.Content[0].OrderNumber())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestFindAll_UnknownSortProperty() {
	req, err := pagination.NewPageRequest(0, 2, 0, []pagination.Order{{Property: "weight"}})
	suite.Require().NoError(err)

	_, err = suite.repository.FindAll(context.Background(), req)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestDeleteByID() {
	ctx := context.Background()

	saved, err := suite.repository.Save(ctx, suite.newDelivery("ORD-1", delivery.Pending))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteByID(ctx, saved.ID()))
	suite.assertDeliveryCount(0)

	suite.Require().NoError(suite.repository.DeleteByID(ctx, saved.ID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(orderNumber string, status delivery.Status) *delivery.Delivery {
	d, err := delivery.NewDelivery(delivery.Attributes{
		OrderNumber: orderNumber,
		Recipient:   "Alice",
		Address:     "1 Main St",
		Status:      status,
		Courier:     "courier-1",
	})
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
