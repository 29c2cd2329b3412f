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

type VoucherStorageTestSuite struct {
	BaseTestSuite
	storage storage.VoucherStorage
}

func TestVoucherStorage(t *testing.T) {
	suite.Run(t, new(VoucherStorageTestSuite))
}

func (s *VoucherStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/voucher"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *VoucherStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *VoucherStorageTestSuite) TestGetAndStoreVoucher() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	voucher, err := s.storage.GetVoucher(ctx, tx, "voucher_1")
	s.Require().NoError(err)
	s.Assert().Equal(model.VoucherLifecycleIssued, voucher.LifecycleState)
	s.Assert().Equal("alloc_1", voucher.AllocationID)

	voucher.LifecycleState = model.VoucherLifecycleLocked
	voucher.LockedForOrderID = "so_9"
	voucher.Version += 1
	s.Require().NoError(s.storage.StoreVoucher(ctx, tx, voucher))

	stored, err := s.storage.GetVoucher(ctx, tx, "voucher_1")
	s.Require().NoError(err)
	s.Assert().Equal(voucher, stored)

	var historyCount int
	s.Require().NoError(tx.QueryRow(ctx, `SELECT COUNT(*) FROM voucher_history WHERE id = $1`, "voucher_1").Scan(&historyCount))
	s.Assert().Equal(1, historyCount)

	_, err = s.storage.GetVoucher(ctx, tx, "voucher_404")
	s.Assert().ErrorIs(err, model.ErrVoucherNotFound)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *VoucherStorageTestSuite) TestListVouchers() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := s.storage.ListVouchers(ctx, tx, storage.ListVouchersRequest{
		Limit:       10,
		CustomerIDs: []string{"cust_1"},
	})
	s.Require().NoError(err)
	s.Assert().Equal(2, res.Total)
	s.Require().Len(res.Vouchers, 2)
	s.Assert().Equal("voucher_1", res.Vouchers[0].ID)
	s.Assert().Equal("voucher_2", res.Vouchers[1].ID)

	res, err = s.storage.ListVouchers(ctx, tx, storage.ListVouchersRequest{
		Limit: 10,
		IDs:   []string{"voucher_3"},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, res.Total)
	s.Assert().Equal("BTL-200", res.Vouchers[0].EarlyBindingSerial)
}
