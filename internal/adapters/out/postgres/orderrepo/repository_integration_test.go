package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/opinionrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/statusrepo"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, conflict translation and the compare-and-swap status update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	catalog    status.Catalog
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&statusrepo.StatusDTO{},
		&productrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&opinionrepo.OpinionDTO{},
	))

	suite.Require().NoError(db.Create(&[]statusrepo.StatusDTO{
		{ID: 1, Name: status.Unapproved},
		{ID: 2, Name: status.Approved},
		{ID: 3, Name: status.Cancelled},
		{ID: 4, Name: status.Fulfilled},
	}).Error)

	statuses, err := statusrepo.NewGormStatusRepository(db).GetAll(ctx)
	suite.Require().NoError(err)
	suite.catalog, err = status.NewCatalog(statuses)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE opinions, order_items, orders, products RESTART IDENTITY CASCADE").Error)

	suite.Require().NoError(suite.db.Create(&[]productrepo.ProductDTO{
		{ID: 1, Name: "Herbata zielona", Price: decimal.RequireFromString("12.50")},
		{ID: 2, Name: "Kawa ziarnista", Price: decimal.RequireFromString("39.90")},
	}).Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.catalog)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	items, err := order.NewItems([]order.ItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("39.90")},
	})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(5, suite.catalog.Default(), items)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndPersistsItems() {
	ctx := context.Background()

	orderID, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)
	suite.Require().Positive(orderID)

	restored, err := suite.repository.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(orderID, restored.ID())
	suite.Equal(5, restored.UserID())
	suite.Equal(status.Unapproved, restored.Status().Name)
	suite.Nil(restored.ApprovedAt())
	suite.Require().Len(restored.Items(), 2)
	suite.Equal(1, restored.Items()[0].ProductID())
	suite.Equal(2, restored.Items()[0].Quantity())
	suite.True(restored.Items()[0].UnitPrice().Equal(decimal.RequireFromString("12.50")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateProductRows_Conflict() {
	ctx := context.Background()

	items := []order.Item{
		order.RestoreItem(1, 2, decimal.RequireFromString("12.50")),
		order.RestoreItem(1, 3, decimal.RequireFromString("12.50")),
	}
	testOrder, err := order.NewOrder(5, suite.catalog.Default(), items)
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 99999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_Success() {
	ctx := context.Background()

	orderID, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	aggregate, err := suite.repository.Get(ctx, orderID)
	suite.Require().NoError(err)

	expectedStatusID := aggregate.Status().ID
	approved, err := suite.catalog.Resolve(status.IdentifierByName(status.Approved), false)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ChangeStatus(approved, time.Now().UTC()))

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, aggregate, expectedStatusID))

	restored, err := suite.repository.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(status.Approved, restored.Status().Name)
	suite.Require().NotNil(restored.ApprovedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_StaleRead_Conflict() {
	ctx := context.Background()

	orderID, err := suite.repository.Add(ctx, suite.createTestOrder())
	suite.Require().NoError(err)

	aggregate, err := suite.repository.Get(ctx, orderID)
	suite.Require().NoError(err)

	approved, err := suite.catalog.Resolve(status.IdentifierByName(status.Approved), false)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ChangeStatus(approved, time.Now().UTC()))

	// Another writer moved the order first.
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", orderID).Update("status_id", 3).Error)

	err = suite.repository.UpdateStatus(ctx, aggregate, 1)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingOrder_NotFound() {
	ctx := context.Background()

	items, err := order.NewItems([]order.ItemInput{
		{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("12.50")},
	})
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		99999, 5, status.Status{ID: 2, Name: status.Approved}, nil, items)
	suite.Require().NoError(err)

	err = suite.repository.UpdateStatus(ctx, aggregate, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
