package wms_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/binding"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/shipment"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/wms"
	mock_binding "github.com/cellarlink/cellarlink/test/mock/fulfillment/binding"
	mock_shipment "github.com/cellarlink/cellarlink/test/mock/fulfillment/shipment"
	mock_storage "github.com/cellarlink/cellarlink/test/mock/fulfillment/storage"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WmsServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	orderStorage    *mock_storage.MockShippingOrderStorage
	shipmentStorage *mock_storage.MockShipmentStorage
	bindingSvc      *mock_binding.MockService
	shipmentSvc     *mock_shipment.MockService
	tx              *mock_storage.MockTx
	wmsSvc          wms.Service
}

func TestWmsService(t *testing.T) {
	suite.Run(t, new(WmsServiceTestSuite))
}

func (s *WmsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.orderStorage = mock_storage.NewMockShippingOrderStorage(s.ctrl)
	s.shipmentStorage = mock_storage.NewMockShipmentStorage(s.ctrl)
	s.bindingSvc = mock_binding.NewMockService(s.ctrl)
	s.shipmentSvc = mock_shipment.NewMockService(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.wmsSvc = wms.NewService(s.orderStorage, s.shipmentStorage, s.bindingSvc, s.shipmentSvc)
}

func (s *WmsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WmsServiceTestSuite) pickingOrder() model.ShippingOrder {
	return model.ShippingOrder{
		ID:                  "so-1",
		Version:             3,
		CustomerID:          "customer-1",
		Status:              model.ShippingOrderStatusPicking,
		WarehouseID:         "warehouse-1",
		Carrier:             "carrier-1",
		PackagingPreference: model.PackagingPreferenceStandard,
		DestinationAddress:  "1 Rue de la Cave, Bordeaux",
		Lines: []model.ShippingOrderLine{
			{
				ID:                 "line-1",
				ShippingOrderID:    "so-1",
				VoucherID:          "voucher-1",
				AllocationID:       "allocation-1",
				Status:             model.LineStatusValidated,
				EarlyBindingSerial: "BTL-EARLY",
			},
			{
				ID:              "line-2",
				ShippingOrderID: "so-1",
				VoucherID:       "voucher-2",
				AllocationID:    "allocation-1",
				Status:          model.LineStatusValidated,
			},
		},
	}
}

func (s *WmsServiceTestSuite) TestSendPickingInstructions() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	so.Status = model.ShippingOrderStatusPlanned
	req := wms.SendPickingInstructionsRequest{OrderID: "so-1", Requester: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.wmsSvc.SendPickingInstructions(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().NotEmpty(result.MessageID)

	instructions := wms.PickingInstructions{}
	s.Require().NoError(json.Unmarshal(result.Payload, &instructions))
	s.Require().Len(instructions.Lines, 2)
	s.Assert().Equal(wms.BindingTypeEarly, instructions.Lines[0].BindingType)
	s.Assert().Equal("BTL-EARLY", instructions.Lines[0].SpecificSerial)
	s.Assert().Empty(instructions.Lines[0].AllocationConstraint)
	s.Assert().Equal(wms.BindingTypeLate, instructions.Lines[1].BindingType)
	s.Assert().Equal("allocation-1", instructions.Lines[1].AllocationConstraint)
	s.Assert().Empty(instructions.Lines[1].SpecificSerial)
}

func (s *WmsServiceTestSuite) TestSendPickingInstructionsDraftOrder() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	so.Status = model.ShippingOrderStatusDraft
	req := wms.SendPickingInstructionsRequest{OrderID: "so-1", Requester: "operator"}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.wmsSvc.SendPickingInstructions(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrWmsStatusNotAllowed)
}

func (s *WmsServiceTestSuite) TestReceivePickingFeedback() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	req := wms.ReceivePickingFeedbackRequest{
		OrderID: "so-1",
		PickedLines: []wms.PickedLine{
			{LineID: "line-1", SerialNumber: "BTL-OTHER"}, // early bound, skipped
			{LineID: "line-9", SerialNumber: "BTL-003"},   // unknown line
			{LineID: "line-2", SerialNumber: "BTL-002"},   // good late pick
		},
		Actor: "wms",
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.orderStorage.EXPECT().AddException(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, exception model.ShippingOrderException) error {
				s.Assert().Equal(model.ExceptionTypeWmsDiscrepancy, exception.Type)
				s.Assert().Equal("line-9", exception.LineID)
				return nil
			},
		),
		s.bindingSvc.EXPECT().BindLineTx(gomock.Any(), s.tx, ts, gomock.Any(), "line-2", "BTL-002", "wms").Return(nil),
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.ShippingOrder) error {
				s.Assert().Equal(int64(4), stored.Version)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.wmsSvc.ReceivePickingFeedback(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(1, result.BoundCount)
	s.Assert().Equal(1, result.DiscrepancyCount)
	s.Assert().False(result.Success)
	s.Require().Len(result.Lines, 3)
	s.Assert().Equal(wms.PickStatusSkipped, result.Lines[0].Status)
	s.Assert().Equal(wms.PickStatusInvalid, result.Lines[1].Status)
	s.Assert().Equal(wms.PickStatusBound, result.Lines[2].Status)
}

func (s *WmsServiceTestSuite) TestReceivePickingFeedbackBindingFailure() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	so.Lines[1].Status = model.LineStatusPending
	req := wms.ReceivePickingFeedbackRequest{
		OrderID:     "so-1",
		PickedLines: []wms.PickedLine{{LineID: "line-2", SerialNumber: "BTL-DRIFTED"}},
		Actor:       "wms",
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.bindingSvc.EXPECT().BindLineTx(gomock.Any(), s.tx, ts, gomock.Any(), "line-2", "BTL-DRIFTED", "wms").
			Return(errors.New("bottle BTL-DRIFTED belongs to allocation allocation-9")),
		s.orderStorage.EXPECT().AddException(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, exception model.ShippingOrderException) error {
				s.Assert().Equal(model.ExceptionTypeWmsDiscrepancy, exception.Type)
				s.Assert().Equal("line-2", exception.LineID)
				return nil
			},
		),
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.ShippingOrder) error {
				// The failed bind must not leave the line validated without a
				// binding behind it.
				s.Assert().Equal(model.LineStatusPending, stored.Lines[1].Status)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.wmsSvc.ReceivePickingFeedback(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(0, result.BoundCount)
	s.Assert().Equal(1, result.DiscrepancyCount)
	s.Assert().Equal(wms.PickStatusBindingFailed, result.Lines[0].Status)
}

func (s *WmsServiceTestSuite) TestReceivePickingFeedbackPlannedOrder() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	so.Status = model.ShippingOrderStatusPlanned
	req := wms.ReceivePickingFeedbackRequest{
		OrderID:     "so-1",
		PickedLines: []wms.PickedLine{{LineID: "line-2", SerialNumber: "BTL-002"}},
		Actor:       "wms",
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.wmsSvc.ReceivePickingFeedback(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrWmsStatusNotAllowed)
}

func (s *WmsServiceTestSuite) TestValidateSerials() {
	so := s.pickingOrder()
	req := wms.ValidateSerialsRequest{
		OrderID: "so-1",
		Serials: []wms.PickedLine{
			{LineID: "line-2", SerialNumber: "BTL-002"},
			{LineID: "line-9", SerialNumber: "BTL-003"},
		},
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.bindingSvc.EXPECT().ValidateSerialForLineTx(gomock.Any(), s.tx, gomock.Any(), "BTL-002").Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	results, err := s.wmsSvc.ValidateSerials(s.ctx, req)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Assert().True(results[0].Valid)
	s.Assert().False(results[1].Valid)
}

func (s *WmsServiceTestSuite) TestConfirmShipment() {
	ts := time.Now().Unix()
	shpmt := model.Shipment{
		ID:                   "shipment-1",
		ShippingOrderID:      "so-1",
		Status:               model.ShipmentStatusPreparing,
		ShippedBottleSerials: []string{"BTL-001", "BTL-002"},
	}
	req := wms.WmsConfirmShipmentRequest{
		ShipmentID:     "shipment-1",
		TrackingNumber: "TRACK-42",
		ShippedSerials: []string{"BTL-001", "BTL-002"},
		Actor:          "wms",
	}
	confirmed := shpmt
	confirmed.Status = model.ShipmentStatusShipped
	confirmed.TrackingNumber = "TRACK-42"

	so := s.pickingOrder()
	so.Lines[1].BoundBottleSerial = "BTL-002"

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "shipment-1").Return(shpmt, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.bindingSvc.EXPECT().ValidateAllBindingsTx(gomock.Any(), s.tx, gomock.Any()).Return(
			binding.AllBindingsValidation{AllValid: true}),
		// The manifest matches and the bindings still hold, so the
		// reconciliation tx is released before delegating to the shipment
		// service.
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.shipmentSvc.EXPECT().ConfirmShipment(gomock.Any(), ts, shipment.ConfirmShipmentRequest{
			ShipmentID:         "shipment-1",
			TrackingNumber:     "TRACK-42",
			CaseBreakConfirmed: true,
			Actor:              "wms",
		}).Return(confirmed, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.wmsSvc.ConfirmShipment(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(model.ShipmentStatusShipped, result.Status)
}

func (s *WmsServiceTestSuite) TestConfirmShipmentInvalidBinding() {
	ts := time.Now().Unix()
	shpmt := model.Shipment{
		ID:                   "shipment-1",
		ShippingOrderID:      "so-1",
		Status:               model.ShipmentStatusPreparing,
		ShippedBottleSerials: []string{"BTL-001", "BTL-002"},
	}
	req := wms.WmsConfirmShipmentRequest{
		ShipmentID:     "shipment-1",
		TrackingNumber: "TRACK-42",
		ShippedSerials: []string{"BTL-001", "BTL-002"},
		Actor:          "wms",
	}
	so := s.pickingOrder()
	so.Lines[1].BoundBottleSerial = "BTL-002"

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "shipment-1").Return(shpmt, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		// The bottle was quarantined after picking feedback. The discrepancy
		// is committed and the shipment never reaches the shipment service.
		s.bindingSvc.EXPECT().ValidateAllBindingsTx(gomock.Any(), s.tx, gomock.Any()).Return(
			binding.AllBindingsValidation{
				AllValid: false,
				Results: []binding.BindingValidation{
					{LineID: "line-1", Valid: true},
					{LineID: "line-2", Valid: false, Errors: []string{"bottle BTL-002 is in state quarantined"}},
				},
			}),
		s.orderStorage.EXPECT().AddException(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, exception model.ShippingOrderException) error {
				s.Assert().Equal(model.ExceptionTypeWmsDiscrepancy, exception.Type)
				s.Assert().Equal("line-2", exception.LineID)
				s.Assert().Contains(exception.Description, "no longer valid")
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.wmsSvc.ConfirmShipment(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrBindingInvalid)
}

func (s *WmsServiceTestSuite) TestConfirmShipmentPartial() {
	ts := time.Now().Unix()
	shpmt := model.Shipment{
		ID:                   "shipment-1",
		ShippingOrderID:      "so-1",
		Status:               model.ShipmentStatusPreparing,
		ShippedBottleSerials: []string{"BTL-001", "BTL-002"},
	}
	req := wms.WmsConfirmShipmentRequest{
		ShipmentID:     "shipment-1",
		TrackingNumber: "TRACK-42",
		ShippedSerials: []string{"BTL-001"},
		Actor:          "wms",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "shipment-1").Return(shpmt, nil),
		// The partial-shipment exception survives the failed confirmation.
		s.orderStorage.EXPECT().AddException(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, exception model.ShippingOrderException) error {
				s.Assert().Equal(model.ExceptionTypePartialShipment, exception.Type)
				s.Assert().Equal("so-1", exception.ShippingOrderID)
				s.Assert().Contains(exception.Description, "BTL-002")
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.wmsSvc.ConfirmShipment(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrPartialShipment)
}

func (s *WmsServiceTestSuite) TestConfirmShipmentNotPreparing() {
	ts := time.Now().Unix()
	shpmt := model.Shipment{ID: "shipment-1", ShippingOrderID: "so-1", Status: model.ShipmentStatusShipped}
	req := wms.WmsConfirmShipmentRequest{
		ShipmentID:     "shipment-1",
		TrackingNumber: "TRACK-42",
		ShippedSerials: []string{"BTL-001"},
		Actor:          "wms",
	}

	gomock.InOrder(
		s.shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.shipmentStorage.EXPECT().GetShipment(gomock.Any(), s.tx, "shipment-1").Return(shpmt, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.wmsSvc.ConfirmShipment(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrShipmentNotPreparing)
}

func (s *WmsServiceTestSuite) TestHandleDiscrepancy() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	req := wms.HandleDiscrepancyRequest{
		OrderID: "so-1",
		LineID:  "line-2",
		Details: "bottle found broken in the cellar",
		Actor:   "wms",
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.orderStorage.EXPECT().AddException(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	exception, err := s.wmsSvc.HandleDiscrepancy(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(model.ExceptionTypeWmsDiscrepancy, exception.Type)
	s.Assert().Equal(model.ExceptionStatusActive, exception.Status)
	s.Assert().NotEmpty(exception.ResolutionPath)
}

func (s *WmsServiceTestSuite) TestRequestRePick() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	so.Lines[1].BoundBottleSerial = "BTL-002"
	so.Lines[1].Status = model.LineStatusValidated
	req := wms.RequestRePickRequest{
		OrderID: "so-1",
		LineID:  "line-2",
		Reason:  "bottle damaged during pick",
		Actor:   "operator",
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.bindingSvc.EXPECT().UnbindLineTx(gomock.Any(), s.tx, ts, gomock.Any(), "line-2", "operator").Return(nil),
		s.orderStorage.EXPECT().StoreShippingOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.ShippingOrder) error {
				s.Assert().Equal(model.LineStatusValidated, stored.Lines[1].Status)
				s.Assert().Equal(int64(4), stored.Version)
				return nil
			},
		),
		s.orderStorage.EXPECT().AddAuditLog(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.wmsSvc.RequestRePick(s.ctx, ts, req)
	s.Require().NoError(err)

	instructions := wms.PickingInstructions{}
	s.Require().NoError(json.Unmarshal(result.Payload, &instructions))
	s.Require().Len(instructions.Lines, 1)
	s.Assert().Equal("line-2", instructions.Lines[0].LineID)
	s.Assert().Equal(wms.BindingTypeLate, instructions.Lines[0].BindingType)
	s.Assert().Equal("allocation-1", instructions.Lines[0].AllocationConstraint)
}

func (s *WmsServiceTestSuite) TestRequestRePickEarlyBoundLine() {
	ts := time.Now().Unix()
	so := s.pickingOrder()
	req := wms.RequestRePickRequest{
		OrderID: "so-1",
		LineID:  "line-1",
		Reason:  "wrong bottle",
		Actor:   "operator",
	}

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.wmsSvc.RequestRePick(s.ctx, ts, req)
	s.ErrorIs(err, model.ErrLineNotBindable)
}

func (s *WmsServiceTestSuite) TestCheckPickingCompletion() {
	so := s.pickingOrder()
	so.Lines = append(so.Lines, model.ShippingOrderLine{
		ID:              "line-3",
		ShippingOrderID: "so-1",
		VoucherID:       "voucher-3",
		AllocationID:    "allocation-1",
		Status:          model.LineStatusCancelled,
	})

	gomock.InOrder(
		s.orderStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.orderStorage.EXPECT().GetShippingOrder(gomock.Any(), s.tx, "so-1").Return(so, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	completion, err := s.wmsSvc.CheckPickingCompletion(s.ctx, "so-1")
	s.Require().NoError(err)
	s.Assert().Equal(2, completion.ExpectedCount)
	s.Assert().Equal(1, completion.ReceivedCount)
	s.Assert().Equal([]string{"line-2"}, completion.PendingLines)
	s.Assert().False(completion.Complete)
	s.Assert().False(completion.EarlyBoundOnly)
}
