package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage/postgres"
	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
)

type InventoryStorageTestSuite struct {
	BaseTestSuite
	storage storage.InventoryStorage
}

func TestInventoryStorage(t *testing.T) {
	suite.Run(t, new(InventoryStorageTestSuite))
}

func (s *InventoryStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/inventory"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *InventoryStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *InventoryStorageTestSuite) TestGetAndStoreBottle() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	bottle, err := s.storage.GetBottle(ctx, tx, "BTL-101")
	s.Require().NoError(err)
	s.Assert().Equal("alloc_1", bottle.AllocationID)
	s.Assert().Equal(model.BottleStateStored, bottle.State)

	bottle.State = model.BottleStateReservedForPicking
	bottle.Version += 1
	s.Require().NoError(s.storage.StoreBottle(ctx, tx, bottle))

	stored, err := s.storage.GetBottle(ctx, tx, "BTL-101")
	s.Require().NoError(err)
	s.Assert().Equal(bottle, stored)

	_, err = s.storage.GetBottle(ctx, tx, "BTL-404")
	s.Assert().ErrorIs(err, model.ErrBottleNotFound)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *InventoryStorageTestSuite) TestListBottles() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := s.storage.ListBottles(ctx, tx, storage.ListBottlesRequest{
		Limit:        10,
		AllocationID: "alloc_1",
		States:       []model.BottleState{model.BottleStateStored},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Require().Len(res.Bottles, 1)
	s.Assert().Equal("BTL-101", res.Bottles[0].SerialNumber)

	res, err = s.storage.ListBottles(ctx, tx, storage.ListBottlesRequest{
		Limit:       10,
		WarehouseID: "wh_2",
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Assert().Equal("BTL-200", res.Bottles[0].SerialNumber)

	res, err = s.storage.ListBottles(ctx, tx, storage.ListBottlesRequest{
		Limit:         10,
		SerialNumbers: []string{"BTL-100", "BTL-200"},
	})
	s.Require().NoError(err)
	s.Assert().Equal(2, res.Total)
}

func (s *InventoryStorageTestSuite) TestListCases() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := s.storage.ListCases(ctx, tx, storage.ListCasesRequest{
		AllocationID:      "alloc_1",
		IntegrityStatuses: []model.CaseIntegrityStatus{model.CaseIntegrityIntact},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Require().Len(res.Cases, 1)
	s.Assert().Equal("case_1", res.Cases[0].CaseID)
	s.Assert().Equal(6, res.Cases[0].BottleCount)

	res, err = s.storage.ListCases(ctx, tx, storage.ListCasesRequest{AllocationID: "alloc_2"})
	s.Require().NoError(err)
	s.Assert().Equal(0, res.Total)
	s.Assert().Empty(res.Cases)
}

func (s *InventoryStorageTestSuite) TestGetActiveBindingForBottle() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	binding, err := s.storage.GetActiveBindingForBottle(ctx, tx, "BTL-100")
	s.Require().NoError(err)
	s.Require().NotNil(binding)
	s.Assert().Equal("so_1", binding.ShippingOrderID)
	s.Assert().Equal("line_2", binding.LineID)
	s.Assert().Equal(model.ShippingOrderStatusPicking, binding.OrderStatus)

	binding, err = s.storage.GetActiveBindingForBottle(ctx, tx, "BTL-101")
	s.Require().NoError(err)
	s.Assert().Nil(binding)
}
