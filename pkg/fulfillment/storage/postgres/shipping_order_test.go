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

type ShippingOrderStorageTestSuite struct {
	BaseTestSuite
	storage storage.ShippingOrderStorage
}

func TestShippingOrderStorage(t *testing.T) {
	suite.Run(t, new(ShippingOrderStorageTestSuite))
}

func (s *ShippingOrderStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/shipping_order"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *ShippingOrderStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *ShippingOrderStorageTestSuite) TestStoreShippingOrder() {
	so := model.ShippingOrder{
		ID:                  "so_new",
		Version:             1,
		CustomerID:          "cust_1",
		WarehouseID:         "wh_1",
		Carrier:             "carrier_1",
		PackagingPreference: model.PackagingPreferenceStandard,
		DestinationAddress:  "1 Rue de la Cave, Bordeaux",
		Status:              model.ShippingOrderStatusDraft,
		Lines: []model.ShippingOrderLine{
			{
				ID:              "line_new_1",
				ShippingOrderID: "so_new",
				VoucherID:       "voucher_9",
				AllocationID:    "alloc_1",
				WineVariantID:   "wine_1",
				FormatID:        "750ml",
				Status:          model.LineStatusPending,
			},
		},
		CreatedAt: 1714000000,
		CreatedBy: "operator",
		UpdatedAt: 1714000000,
		UpdatedBy: "operator",
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.StoreShippingOrder(ctx, tx, so))

	newSO := so
	newSO.Version = 2
	newSO.Status = model.ShippingOrderStatusPlanned
	newSO.Lines[0].Status = model.LineStatusValidated
	newSO.UpdatedAt = 1714000100
	s.Require().NoError(s.storage.StoreShippingOrder(ctx, tx, newSO))

	var dbData model.ShippingOrder
	s.Require().NoError(tx.QueryRow(ctx, `SELECT shipping_order FROM shipping_order WHERE id = $1`, so.ID).Scan(&dbData))
	s.Assert().Equal(newSO, dbData)

	var historyCount int
	s.Require().NoError(tx.QueryRow(ctx, `SELECT COUNT(*) FROM shipping_order_history WHERE id = $1`, so.ID).Scan(&historyCount))
	s.Assert().Equal(2, historyCount)

	// Line lookup table follows the document.
	var lineStatus string
	s.Require().NoError(tx.QueryRow(ctx, `SELECT "status" FROM shipping_order_line WHERE id = $1`, "line_new_1").Scan(&lineStatus))
	s.Assert().Equal("validated", lineStatus)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *ShippingOrderStorageTestSuite) TestGetShippingOrder() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.storage.GetShippingOrder(ctx, tx, "so_1")
	s.Require().NoError(err)
	s.Assert().Equal("so_1", so.ID)
	s.Assert().Equal(model.ShippingOrderStatusPicking, so.Status)
	s.Require().Len(so.Lines, 2)
	s.Assert().Equal("BTL-100", so.Lines[1].BoundBottleSerial)

	_, err = s.storage.GetShippingOrder(ctx, tx, "so_missing")
	s.Assert().ErrorIs(err, model.ErrShippingOrderNotFound)
}

func (s *ShippingOrderStorageTestSuite) TestListShippingOrders() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	baseReq := storage.ListShippingOrdersRequest{Limit: 10}

	res, err := s.storage.ListShippingOrders(ctx, tx, baseReq)
	s.Require().NoError(err)
	s.Assert().Equal(2, res.Total)
	s.Require().Len(res.Orders, 2)
	s.Assert().Equal("so_1", res.Orders[0].ID)
	s.Assert().Equal("so_2", res.Orders[1].ID)

	req := baseReq
	req.CustomerIDs = []string{"cust_2"}
	res, err = s.storage.ListShippingOrders(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Require().Len(res.Orders, 1)
	s.Assert().Equal("so_2", res.Orders[0].ID)

	req = baseReq
	req.Statuses = []model.ShippingOrderStatus{model.ShippingOrderStatusPicking}
	res, err = s.storage.ListShippingOrders(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Assert().Equal("so_1", res.Orders[0].ID)

	req = baseReq
	req.VoucherIDs = []string{"voucher_2"}
	res, err = s.storage.ListShippingOrders(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Assert().Equal("so_1", res.Orders[0].ID)

	req = baseReq
	req.Limit = 1
	req.Offset = 1
	res, err = s.storage.ListShippingOrders(ctx, tx, req)
	s.Require().NoError(err)
	s.Assert().Equal(2, res.Total)
	s.Require().Len(res.Orders, 1)
	s.Assert().Equal("so_2", res.Orders[0].ID)
}

func (s *ShippingOrderStorageTestSuite) TestExceptions() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	exception := model.ShippingOrderException{
		ID:              "exception_new",
		ShippingOrderID: "so_2",
		Type:            model.ExceptionTypeVoucherIneligible,
		Status:          model.ExceptionStatusActive,
		Description:     "voucher voucher_3 is suspended",
		ResolutionPath:  "resolve the voucher state upstream, remove the voucher from the order, or cancel the shipping order",
		CreatedAt:       1714000400,
		CreatedBy:       "operator",
	}
	s.Require().NoError(s.storage.AddException(ctx, tx, exception))

	got, err := s.storage.GetException(ctx, tx, "exception_new")
	s.Require().NoError(err)
	s.Assert().Equal(exception, got)

	s.Require().NoError(s.storage.ResolveException(ctx, tx, "exception_new", 1714000500, "operator"))
	got, err = s.storage.GetException(ctx, tx, "exception_new")
	s.Require().NoError(err)
	s.Assert().Equal(model.ExceptionStatusResolved, got.Status)
	s.Assert().Equal(int64(1714000500), got.ResolvedAt)
	s.Assert().Equal("operator", got.ResolvedBy)

	s.Assert().ErrorIs(s.storage.ResolveException(ctx, tx, "exception_missing", 1714000500, "operator"), model.ErrExceptionNotFound)

	res, err := s.storage.ListExceptions(ctx, tx, storage.ListExceptionsRequest{
		Limit:    10,
		Statuses: []model.ExceptionStatus{model.ExceptionStatusActive},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Require().Len(res.Exceptions, 1)
	s.Assert().Equal("exception_1", res.Exceptions[0].ID)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *ShippingOrderStorageTestSuite) TestAddAuditLog() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	entry := model.AuditLogEntry{
		EntityID:    "so_1",
		EventType:   "shipping_order.transitioned",
		Description: "picking -> shipped",
		Actor:       "operator",
		CreatedAt:   1714000600,
	}
	s.Require().NoError(s.storage.AddAuditLog(ctx, tx, entry))

	var count int
	s.Require().NoError(tx.QueryRow(ctx, `SELECT COUNT(*) FROM shipping_order_audit_log WHERE entity_id = $1 AND event_type = $2`, "so_1", "shipping_order.transitioned").Scan(&count))
	s.Assert().Equal(1, count)

	s.Require().NoError(tx.Commit(ctx))
}
