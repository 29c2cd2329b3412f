package shippingorder_test

import (
	"context"
	"testing"
	"time"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/shippingorder"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/voucherlock"
	mock_binding "github.com/cellarlink/cellarlink/test/mock/fulfillment/binding"
	mock_shippingorder "github.com/cellarlink/cellarlink/test/mock/fulfillment/shippingorder"
	mock_storage "github.com/cellarlink/cellarlink/test/mock/fulfillment/storage"
	mock_voucherlock "github.com/cellarlink/cellarlink/test/mock/fulfillment/voucherlock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ShippingOrderServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	orderStorage   *mock_storage.MockShippingOrderStorage
	voucherStorage *mock_storage.MockVoucherStorage
	lockSvc        *mock_voucherlock.MockLockService
	bindingSvc     *mock_binding.MockService
	customers      *mock_shippingorder.MockCustomerDirectory
	tx             *mock_storage.MockTx
	orderSvc       shippingorder.Service
}

func TestShippingOrderService(t *testing.T) {
	suite.Run(t, new(ShippingOrderServiceTestSuite))
}

func (s *ShippingOrderServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.orderStorage = mock_storage.NewMockShippingOrderStorage(s.ctrl)
	s.voucherStorage = mock_storage.NewMockVoucherStorage(s.ctrl)
	s.lockSvc = mock_voucherlock.NewMockLockService(s.ctrl)
	s.bindingSvc = mock_binding.NewMockService(s.ctrl)
	s.customers = mock_shippingorder.NewMockCustomerDirectory(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.orderSvc = shippingorder.NewService(s.orderStorage, s.voucherStorage, s.lockSvc, s.bindingSvc, s.customers)
}

func (s *ShippingOrderServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ShippingOrderServiceTestSuite) issuedVoucher(id string) model.Voucher {
	return model.Voucher{
		ID:             id,
		CustomerID:     "customer-1",
		AllocationID:   "allocation-1",
		LifecycleState: model.VoucherLifecycleIssued,
	}
}

func (s *ShippingOrderServiceTestSuite) TestCreate() {
	ts := time.Now().Unix()
	req := shippingorder.CreateShippingOrderRequest{
		CustomerID:          "customer-1",
		VoucherIDs:          []string{"voucher-1", "voucher-2"},
		WarehouseID:         "warehouse-1",
		Carrier:             "carrier-1",
		PackagingPreference: model.PackagingPreferenceStandard,
		DestinationAddress:  "1 Rue de la Cave, Bordeaux",
		Requester:           "operator",
	}

	voucher1 := s.issuedVoucher("voucher-1")
	voucher2 := s.issuedVoucher("voucher-2")
	voucher2.EarlyBindingSerial = "BTL-EARLY"

	gomock.InOrder(
		s.customers.EXPECT().IsActiveCustomer(gomock.Any(), "customer-1").Return(true, nil),
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.voucherStorage.EXPECT().GetVoucher(gomock.Any(), s.tx, "voucher-1").Return(voucher1, nil),
		s.lockSvc.EXPECT().FindShippingOrderForLockedVoucher(gomock.Any(), s.tx, "voucher-1").Return(nil, nil),
		s.voucherStorage.EXPECT().GetVoucher(gomock.Any(), s.tx, "voucher-2").Return(voucher2, nil),
		s.lockSvc.EXPECT().FindShippingOrderForLockedVoucher(gomock.Any(), s.tx, "voucher-2").Return(nil, nil),
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, so model.ShippingOrder) error {
				s.Assert().Equal(model.ShippingOrderStatusDraft, so.Status)
				s.Require().Len(so.Lines, 2)
				s.Assert().Equal("allocation-1", so.Lines[0].AllocationID)
				s.Assert().Equal(model.LineStatusPending, so.Lines[0].Status)
				s.Assert().Equal("BTL-EARLY", so.Lines[1].EarlyBindingSerial)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	so, err := s.orderSvc.Create(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().NotEmpty(so.ID)
	s.Assert().Equal(int64(1), so.Version)
	s.Assert().Equal(ts, so.CreatedAt)
}

func (s *ShippingOrderServiceTestSuite) TestCreateDuplicateVoucher() {
	ts := time.Now().Unix()
	req := shippingorder.CreateShippingOrderRequest{
		CustomerID:          "customer-1",
		VoucherIDs:          []string{"voucher-1", "voucher-1"},
		PackagingPreference: model.PackagingPreferenceStandard,
		DestinationAddress:  "1 Rue de la Cave, Bordeaux",
		Requester:           "operator",
	}

	_, err := s.orderSvc.Create(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrDuplicateVoucher)
}

func (s *ShippingOrderServiceTestSuite) TestCreateInactiveCustomer() {
	ts := time.Now().Unix()
	req := shippingorder.CreateShippingOrderRequest{
		CustomerID:          "customer-1",
		VoucherIDs:          []string{"voucher-1"},
		PackagingPreference: model.PackagingPreferenceStandard,
		DestinationAddress:  "1 Rue de la Cave, Bordeaux",
		Requester:           "operator",
	}

	s.customers.EXPECT().IsActiveCustomer(gomock.Any(), "customer-1").Return(false, nil)

	_, err := s.orderSvc.Create(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ShippingOrderServiceTestSuite) TestCreateIneligibleVoucher() {
	ts := time.Now().Unix()
	req := shippingorder.CreateShippingOrderRequest{
		CustomerID:          "customer-1",
		VoucherIDs:          []string{"voucher-1"},
		PackagingPreference: model.PackagingPreferenceStandard,
		DestinationAddress:  "1 Rue de la Cave, Bordeaux",
		Requester:           "operator",
	}

	suspended := s.issuedVoucher("voucher-1")
	suspended.Suspended = true

	gomock.InOrder(
		s.customers.EXPECT().IsActiveCustomer(gomock.Any(), "customer-1").Return(true, nil),
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.voucherStorage.EXPECT().GetVoucher(gomock.Any(), s.tx, "voucher-1").Return(suspended, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.orderSvc.Create(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrVoucherIneligible)
}

func (s *ShippingOrderServiceTestSuite) TestTransitionToPlannedLocksVouchers() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{
		ID:         "so-1",
		Version:    1,
		CustomerID: "customer-1",
		Status:     model.ShippingOrderStatusDraft,
		Lines: []model.ShippingOrderLine{
			{ID: "line-1", ShippingOrderID: "so-1", VoucherID: "voucher-1", AllocationID: "allocation-1", Status: model.LineStatusPending},
		},
	}
	req := shippingorder.TransitionRequest{OrderID: "so-1", Target: model.ShippingOrderStatusPlanned, Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		// Checkpoint: re-validate every voucher.
		s.voucherStorage.EXPECT().GetVoucher(gomock.Any(), s.tx, "voucher-1").Return(s.issuedVoucher("voucher-1"), nil),
		s.lockSvc.EXPECT().FindShippingOrderForLockedVoucher(gomock.Any(), s.tx, "voucher-1").Return(nil, nil),
		s.lockSvc.EXPECT().LockAllForShippingOrder(gomock.Any(), s.tx, ts, gomock.Any(), "operator").Return(nil),
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.ShippingOrder) error {
				s.Assert().Equal(model.ShippingOrderStatusPlanned, stored.Status)
				s.Assert().Equal(int64(2), stored.Version)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.orderSvc.TransitionTo(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal(model.ShippingOrderStatusPlanned, res.Status)
}

func (s *ShippingOrderServiceTestSuite) TestTransitionToPickingValidatesLines() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{
		ID:         "so-1",
		Version:    2,
		CustomerID: "customer-1",
		Status:     model.ShippingOrderStatusPlanned,
		Lines: []model.ShippingOrderLine{
			{ID: "line-1", ShippingOrderID: "so-1", VoucherID: "voucher-1", Status: model.LineStatusPending},
		},
	}
	req := shippingorder.TransitionRequest{OrderID: "so-1", Target: model.ShippingOrderStatusPicking, Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.voucherStorage.EXPECT().GetVoucher(gomock.Any(), s.tx, "voucher-1").Return(s.issuedVoucher("voucher-1"), nil),
		s.lockSvc.EXPECT().FindShippingOrderForLockedVoucher(gomock.Any(), s.tx, "voucher-1").Return(nil, nil),
		// Planned -> picking: locks are already held, no LockAll call.
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.ShippingOrder) error {
				s.Assert().Equal(model.ShippingOrderStatusPicking, stored.Status)
				s.Assert().Equal(model.LineStatusValidated, stored.Lines[0].Status)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.orderSvc.TransitionTo(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal(model.LineStatusValidated, res.Lines[0].Status)
}

func (s *ShippingOrderServiceTestSuite) TestTransitionBlockedByIneligibleVoucher() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{
		ID:         "so-1",
		CustomerID: "customer-1",
		Status:     model.ShippingOrderStatusDraft,
		Lines: []model.ShippingOrderLine{
			{ID: "line-1", ShippingOrderID: "so-1", VoucherID: "voucher-1"},
		},
	}
	req := shippingorder.TransitionRequest{OrderID: "so-1", Target: model.ShippingOrderStatusPlanned, Actor: "operator"}

	quarantined := s.issuedVoucher("voucher-1")
	quarantined.Quarantined = true

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.voucherStorage.EXPECT().GetVoucher(gomock.Any(), s.tx, "voucher-1").Return(quarantined, nil),
		// The exception is committed even though the transition fails.
		s.orderStorage.EXPECT().AddException(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, exception model.ShippingOrderException) error {
				s.Assert().Equal(model.ExceptionTypeVoucherIneligible, exception.Type)
				s.Assert().Equal("so-1", exception.ShippingOrderID)
				s.Assert().Equal("line-1", exception.LineID)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.orderSvc.TransitionTo(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrVoucherIneligible)
}

func (s *ShippingOrderServiceTestSuite) TestTransitionInvalid() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{ID: "so-1", Status: model.ShippingOrderStatusDraft}
	req := shippingorder.TransitionRequest{OrderID: "so-1", Target: model.ShippingOrderStatusShipped, Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.orderSvc.TransitionTo(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrInvalidTransition)
}

func (s *ShippingOrderServiceTestSuite) TestCancelPickingOrderReleasesEverything() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{
		ID:         "so-1",
		Version:    3,
		CustomerID: "customer-1",
		Status:     model.ShippingOrderStatusPicking,
		Lines: []model.ShippingOrderLine{
			{ID: "line-1", ShippingOrderID: "so-1", VoucherID: "voucher-1", Status: model.LineStatusValidated, BoundBottleSerial: "BTL-001"},
			{ID: "line-2", ShippingOrderID: "so-1", VoucherID: "voucher-2", Status: model.LineStatusValidated},
		},
	}
	req := shippingorder.CancelRequest{OrderID: "so-1", Reason: "customer request", Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.bindingSvc.EXPECT().UnbindLineTx(gomock.Any(), s.tx, ts, gomock.Any(), "line-1", "operator").Return(nil),
		s.lockSvc.EXPECT().UnlockAllForShippingOrder(gomock.Any(), s.tx, ts, gomock.Any(), "operator").Return(voucherlock.UnlockAllResult{Unlocked: []string{"voucher-1", "voucher-2"}}),
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.ShippingOrder) error {
				s.Assert().Equal(model.ShippingOrderStatusCancelled, stored.Status)
				s.Assert().Equal(model.LineStatusCancelled, stored.Lines[0].Status)
				s.Assert().Equal(model.LineStatusCancelled, stored.Lines[1].Status)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.orderSvc.Cancel(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal(model.ShippingOrderStatusCancelled, res.Status)
}

func (s *ShippingOrderServiceTestSuite) TestCancelShippedOrderRejected() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{ID: "so-1", Status: model.ShippingOrderStatusShipped}
	req := shippingorder.CancelRequest{OrderID: "so-1", Reason: "too late", Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.orderSvc.Cancel(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrOrderNotCancellable)
}

func (s *ShippingOrderServiceTestSuite) TestAddVoucherOnNonDraftOrder() {
	ts := time.Now().Unix()
	so := model.ShippingOrder{ID: "so-1", Status: model.ShippingOrderStatusPlanned}
	req := shippingorder.VoucherRequest{OrderID: "so-1", VoucherID: "voucher-9", Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.orderSvc.AddVoucher(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrOrderNotEditable)
}

func (s *ShippingOrderServiceTestSuite) TestResolveException() {
	ts := time.Now().Unix()
	exception := model.ShippingOrderException{
		ID:              "exception-1",
		ShippingOrderID: "so-1",
		Type:            model.ExceptionTypeWmsDiscrepancy,
		Status:          model.ExceptionStatusActive,
	}
	req := shippingorder.ResolveExceptionRequest{OrderID: "so-1", ExceptionID: "exception-1", Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetException(gomock.Any(), s.tx, "exception-1").Return(exception, nil),
		s.orderStorage.EXPECT().ResolveException(gomock.Any(), s.tx, "exception-1", ts, "operator").Return(nil),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	resolved, err := s.orderSvc.ResolveException(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal(model.ExceptionStatusResolved, resolved.Status)
	s.Assert().Equal(ts, resolved.ResolvedAt)
	s.Assert().Equal("operator", resolved.ResolvedBy)
}

func (s *ShippingOrderServiceTestSuite) TestResolveExceptionWrongOrder() {
	ts := time.Now().Unix()
	exception := model.ShippingOrderException{
		ID:              "exception-1",
		ShippingOrderID: "so-2",
		Status:          model.ExceptionStatusActive,
	}
	req := shippingorder.ResolveExceptionRequest{OrderID: "so-1", ExceptionID: "exception-1", Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetException(gomock.Any(), s.tx, "exception-1").Return(exception, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.orderSvc.ResolveException(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrExceptionNotFound)
}

func (s *ShippingOrderServiceTestSuite) TestResolveExceptionIdempotent() {
	ts := time.Now().Unix()
	exception := model.ShippingOrderException{
		ID:              "exception-1",
		ShippingOrderID: "so-1",
		Status:          model.ExceptionStatusResolved,
		ResolvedAt:      ts - 100,
		ResolvedBy:      "someone-else",
	}
	req := shippingorder.ResolveExceptionRequest{OrderID: "so-1", ExceptionID: "exception-1", Actor: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetException(gomock.Any(), s.tx, "exception-1").Return(exception, nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	resolved, err := s.orderSvc.ResolveException(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal("someone-else", resolved.ResolvedBy)
}
