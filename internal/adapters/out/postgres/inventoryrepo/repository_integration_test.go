package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/inventoryrepo"
	"orderflow/internal/adapters/out/postgres/pgtest"
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var recordedAt = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type AccessoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *inventoryrepo.GormAccessoryRepository
}

func (suite *AccessoryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *AccessoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = inventoryrepo.NewGormAccessoryRepository(suite.database.DB, pgtest.NopTracker{})
}

func (suite *AccessoryRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *AccessoryRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	a := suite.newAccessory("LC-500")

	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Equal(1, a.Version())

	loaded, err := suite.repository.GetBySKU(ctx, "LC-500")
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(a))
	suite.Equal("Loadcell 500kN", loaded.Name())
	suite.Equal("125.50", loaded.Price().String())
	suite.Equal(0, loaded.CurrentStockLevel())
	suite.Equal("pcs", loaded.UnitOfMeasure())

	err = suite.repository.Add(ctx, suite.newAccessory("LC-500"))
	suite.Require().ErrorIs(err, errs.ErrDuplicate)
}

func (suite *AccessoryRepositoryIntegrationTestSuite) TestUpdate_AppendsMovements() {
	ctx := context.Background()
	a := suite.newAccessory("LC-500")
	suite.Require().NoError(suite.repository.Add(ctx, a))

	_, err := a.RecordMovement(kernel.NewUUID(), inventory.In, 10, "purchase", nil, "store", recordedAt)
	suite.Require().NoError(err)
	_, err = a.RecordMovement(kernel.NewUUID(), inventory.Out, -4, "issue", nil, "store", recordedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, a))
	suite.Empty(a.PendingMovements())

	loaded, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(6, loaded.CurrentStockLevel())
	suite.Equal(2, loaded.Version())

	var movements []inventoryrepo.StockMovementDTO
	suite.Require().NoError(suite.database.DB.Order("accessory_version, seq").Find(&movements).Error)
	suite.Require().Len(movements, 2)
	suite.Equal("IN", movements[0].ChangeType)
	suite.Equal(10, movements[0].NewStockLevel)
	suite.Equal("OUT", movements[1].ChangeType)
	suite.Equal(6, movements[1].NewStockLevel)
}

func (suite *AccessoryRepositoryIntegrationTestSuite) TestUpdate_StaleVersionWritesNothing() {
	ctx := context.Background()
	a := suite.newAccessory("LC-500")
	suite.Require().NoError(suite.repository.Add(ctx, a))

	first, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)

	_, err = first.RecordMovement(kernel.NewUUID(), inventory.In, 5, "", nil, "a", recordedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.RecordMovement(kernel.NewUUID(), inventory.In, 7, "", nil, "b", recordedAt)
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(5, loaded.CurrentStockLevel())
	suite.assertMovements(1)
}

func (suite *AccessoryRepositoryIntegrationTestSuite) TestGetMany() {
	ctx := context.Background()
	a, b := suite.newAccessory("B-2"), suite.newAccessory("A-1")
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	found, err := suite.repository.GetMany(ctx, []kernel.UUID{a.ID(), b.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal("A-1", found[0].SKU())

	empty, err := suite.repository.GetMany(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *AccessoryRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	unused := suite.newAccessory("FREE-1")
	suite.Require().NoError(suite.repository.Add(ctx, unused))
	suite.Require().NoError(suite.repository.Delete(ctx, unused.ID()))
	_, err := suite.repository.Get(ctx, unused.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	moved := suite.newAccessory("MOVED-1")
	_, err = moved.RecordMovement(kernel.NewUUID(), inventory.In, 1, "", nil, "store", recordedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, moved))
	err = suite.repository.Delete(ctx, moved.ID())
	suite.Require().ErrorIs(err, errs.ErrReferentialConflict)

	err = suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccessoryRepositoryIntegrationTestSuite) newAccessory(sku string) *inventory.Accessory {
	price, err := kernel.MoneyFromString("125.5")
	suite.Require().NoError(err)
	a, err := inventory.NewAccessory(kernel.NewUUID(), sku, inventory.Details{
		Name:          "Loadcell 500kN",
		Category:      "Loadcells",
		MinStockLevel: 2,
		Price:         price,
	})
	suite.Require().NoError(err)
	return a
}

func (suite *AccessoryRepositoryIntegrationTestSuite) assertMovements(expected int64) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&inventoryrepo.StockMovementDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestAccessoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccessoryRepositoryIntegrationTestSuite))
}
