// Package wms is the reconciliation boundary between the fulfillment core and
// the external warehouse management system. Picking feedback from the WMS is
// reconciled tuple by tuple against the late-binding rules; anything the WMS
// claims that the core cannot verify becomes a discrepancy exception instead
// of a silent overwrite.
package wms

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/binding"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/shipment"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type BindingType string

const (
	BindingTypeEarly BindingType = "early"
	BindingTypeLate  BindingType = "late"
)

// PickStatus is the per-line outcome of a picking feedback batch.
type PickStatus string

const (
	PickStatusBound         PickStatus = "bound"
	PickStatusSkipped       PickStatus = "skipped"
	PickStatusInvalid       PickStatus = "invalid"
	PickStatusBindingFailed PickStatus = "binding_failed"
)

// PickingInstructionLine tells the WMS what to pick for one order line. Early
// bound lines carry the exact serial; late bound lines carry the allocation
// the picked bottle must come from.
type PickingInstructionLine struct {
	LineID               string      `json:"line_id"`
	VoucherID            string      `json:"voucher_id"`
	AllocationID         string      `json:"allocation_id"`
	WineVariantID        string      `json:"wine_variant_id"`
	FormatID             string      `json:"format_id"`
	BindingType          BindingType `json:"binding_type"`
	SpecificSerial       string      `json:"specific_serial,omitempty"`       // Set for early bound lines.
	AllocationConstraint string      `json:"allocation_constraint,omitempty"` // Set for late bound lines.
}

type PickingInstructions struct {
	MessageID           string                    `json:"message_id"`
	OrderID             string                    `json:"order_id"`
	WarehouseID         string                    `json:"warehouse_id,omitempty"`
	Carrier             string                    `json:"carrier"`
	PackagingPreference model.PackagingPreference `json:"packaging_preference"`
	SpecialInstructions string                    `json:"special_instructions,omitempty"`
	RequestedShipDate   string                    `json:"requested_ship_date,omitempty"`
	DestinationAddress  string                    `json:"destination_address"`
	Lines               []PickingInstructionLine  `json:"lines"`
}

type SendPickingInstructionsRequest struct {
	OrderID   string `json:"order_id"`
	Requester string `json:"requester"`
}

type SendPickingInstructionsResult struct {
	MessageID string          `json:"message_id"`
	Payload   json.RawMessage `json:"payload"`
}

type PickedLine struct {
	LineID       string `json:"line_id"`
	SerialNumber string `json:"serial_number"`
}

type ReceivePickingFeedbackRequest struct {
	OrderID     string       `json:"order_id"`
	PickedLines []PickedLine `json:"picked_lines"`
	Actor       string       `json:"actor"`
}

type LinePickResult struct {
	LineID       string     `json:"line_id"`
	SerialNumber string     `json:"serial_number"`
	Status       PickStatus `json:"status"`
	Reason       string     `json:"reason,omitempty"`
}

type PickingFeedbackResult struct {
	OrderID          string           `json:"order_id"`
	Lines            []LinePickResult `json:"lines"`
	BoundCount       int              `json:"bound_count"`
	DiscrepancyCount int              `json:"discrepancy_count"`
	Success          bool             `json:"success"` // True when no discrepancies occurred.
}

type ValidateSerialsRequest struct {
	OrderID string       `json:"order_id"`
	Serials []PickedLine `json:"serials"`
}

type SerialValidationResult struct {
	LineID       string `json:"line_id"`
	SerialNumber string `json:"serial_number"`
	Valid        bool   `json:"valid"`
	Reason       string `json:"reason,omitempty"`
}

type WmsConfirmShipmentRequest struct {
	ShipmentID     string   `json:"shipment_id"`
	TrackingNumber string   `json:"tracking_number"`
	ShippedSerials []string `json:"shipped_serials"`
	Actor          string   `json:"actor"`
}

type HandleDiscrepancyRequest struct {
	OrderID string `json:"order_id"`
	LineID  string `json:"line_id,omitempty"`
	Details string `json:"details"`
	Actor   string `json:"actor"`
}

type RequestRePickRequest struct {
	OrderID string `json:"order_id"`
	LineID  string `json:"line_id"`
	Reason  string `json:"reason"`
	Actor   string `json:"actor"`
}

type PickingCompletion struct {
	OrderID        string   `json:"order_id"`
	ReceivedCount  int      `json:"received_count"`
	ExpectedCount  int      `json:"expected_count"`
	PendingLines   []string `json:"pending_lines,omitempty"`
	Complete       bool     `json:"complete"`
	EarlyBoundOnly bool     `json:"early_bound_only"` // No late picks are awaited at all.
}

// discrepancyResolutionPath lists the operator's options for every WMS
// discrepancy. Discrepancies are never auto-resolved.
const discrepancyResolutionPath = "request a re-pick for the line, cancel the shipping order, or reconcile inventory manually"

type Service interface {
	SendPickingInstructions(ctx context.Context, ts int64, req SendPickingInstructionsRequest) (SendPickingInstructionsResult, error)
	ReceivePickingFeedback(ctx context.Context, ts int64, req ReceivePickingFeedbackRequest) (PickingFeedbackResult, error)
	ValidateSerials(ctx context.Context, req ValidateSerialsRequest) ([]SerialValidationResult, error)
	ConfirmShipment(ctx context.Context, ts int64, req WmsConfirmShipmentRequest) (model.Shipment, error)
	HandleDiscrepancy(ctx context.Context, ts int64, req HandleDiscrepancyRequest) (model.ShippingOrderException, error)
	RequestRePick(ctx context.Context, ts int64, req RequestRePickRequest) (SendPickingInstructionsResult, error)
	CheckPickingCompletion(ctx context.Context, orderID string) (PickingCompletion, error)
}

type _Service struct {
	orderStorage    storage.ShippingOrderStorage
	shipmentStorage storage.ShipmentStorage
	bindingSvc      binding.Service
	shipmentSvc     shipment.Service
}

func NewService(
	orderStorage storage.ShippingOrderStorage,
	shipmentStorage storage.ShipmentStorage,
	bindingSvc binding.Service,
	shipmentSvc shipment.Service,
) Service {
	return &_Service{
		orderStorage:    orderStorage,
		shipmentStorage: shipmentStorage,
		bindingSvc:      bindingSvc,
		shipmentSvc:     shipmentSvc,
	}
}

// SendPickingInstructions builds the picking message for the WMS. The message
// itself is returned to the caller; transport to the warehouse is handled
// outside this core.
func (s *_Service) SendPickingInstructions(ctx context.Context, ts int64, req SendPickingInstructionsRequest) (SendPickingInstructionsResult, error) {
	if err := ValidateSendPickingInstructionsRequest(req); err != nil {
		return SendPickingInstructionsResult{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}
	if so.Status != model.ShippingOrderStatusPlanned && so.Status != model.ShippingOrderStatusPicking {
		return SendPickingInstructionsResult{}, fmt.Errorf("shipping order %q has status %q, picking instructions need a planned or picking order%w",
			so.ID, so.Status, model.ErrWmsStatusNotAllowed)
	}

	instructions := PickingInstructions{
		MessageID:           util.NewUUID(),
		OrderID:             so.ID,
		WarehouseID:         so.WarehouseID,
		Carrier:             so.Carrier,
		PackagingPreference: so.PackagingPreference,
		SpecialInstructions: so.SpecialInstructions,
		RequestedShipDate:   so.RequestedShipDate,
		DestinationAddress:  so.DestinationAddress,
	}
	for i := range so.Lines {
		line := &so.Lines[i]
		if line.Status == model.LineStatusCancelled {
			continue
		}
		instructionLine := PickingInstructionLine{
			LineID:        line.ID,
			VoucherID:     line.VoucherID,
			AllocationID:  line.AllocationID,
			WineVariantID: line.WineVariantID,
			FormatID:      line.FormatID,
		}
		if line.EarlyBindingSerial != "" {
			instructionLine.BindingType = BindingTypeEarly
			instructionLine.SpecificSerial = line.EarlyBindingSerial
		} else {
			instructionLine.BindingType = BindingTypeLate
			instructionLine.AllocationConstraint = line.AllocationID
		}
		instructions.Lines = append(instructions.Lines, instructionLine)
	}

	payload, err := json.Marshal(instructions)
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "wms.picking_instructions_sent",
		Description: fmt.Sprintf("picking instructions %s built with %d lines", instructions.MessageID, len(instructions.Lines)),
		NewValues:   payload,
		Actor:       req.Requester,
		CreatedAt:   ts,
	})
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return SendPickingInstructionsResult{}, err
	}

	return SendPickingInstructionsResult{MessageID: instructions.MessageID, Payload: payload}, nil
}

// ReceivePickingFeedback reconciles a WMS picking batch in one transaction.
// Early-bound and already-bound lines are skipped so redelivered batches stay
// idempotent; every tuple the core cannot bind becomes a wms_discrepancy
// exception, and the batch keeps going.
func (s *_Service) ReceivePickingFeedback(ctx context.Context, ts int64, req ReceivePickingFeedbackRequest) (PickingFeedbackResult, error) {
	if err := ValidateReceivePickingFeedbackRequest(req); err != nil {
		return PickingFeedbackResult{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return PickingFeedbackResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return PickingFeedbackResult{}, err
	}
	if so.Status != model.ShippingOrderStatusPicking {
		return PickingFeedbackResult{}, fmt.Errorf("shipping order %q has status %q, picking feedback needs a picking order%w",
			so.ID, so.Status, model.ErrWmsStatusNotAllowed)
	}

	result := PickingFeedbackResult{OrderID: so.ID}
	for _, picked := range req.PickedLines {
		lineResult := s.reconcilePickTx(ctx, tx, ts, &so, picked, req.Actor)
		result.Lines = append(result.Lines, lineResult)
		switch lineResult.Status {
		case PickStatusBound:
			result.BoundCount += 1
		case PickStatusInvalid, PickStatusBindingFailed:
			result.DiscrepancyCount += 1
		}
	}
	result.Success = result.DiscrepancyCount == 0

	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return PickingFeedbackResult{}, err
	}

	newValues, _ := json.Marshal(result)
	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "wms.picking_feedback_received",
		Description: fmt.Sprintf("picking feedback processed: %d bound, %d discrepancies", result.BoundCount, result.DiscrepancyCount),
		NewValues:   newValues,
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return PickingFeedbackResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return PickingFeedbackResult{}, err
	}
	return result, nil
}

func (s *_Service) reconcilePickTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, picked PickedLine, actor string) LinePickResult {
	lineResult := LinePickResult{LineID: picked.LineID, SerialNumber: picked.SerialNumber}

	line := so.Line(picked.LineID)
	if line == nil {
		lineResult.Status = PickStatusInvalid
		lineResult.Reason = "line does not exist on this shipping order"
		s.recordDiscrepancyTx(ctx, tx, ts, so.ID, picked.LineID,
			fmt.Sprintf("WMS reported pick of serial %s for unknown line %s", picked.SerialNumber, picked.LineID), actor)
		return lineResult
	}
	if line.EarlyBindingSerial != "" {
		lineResult.Status = PickStatusSkipped
		lineResult.Reason = "line is early bound"
		return lineResult
	}
	if line.BoundBottleSerial != "" {
		lineResult.Status = PickStatusSkipped
		lineResult.Reason = fmt.Sprintf("line is already bound to serial %s", line.BoundBottleSerial)
		return lineResult
	}

	previousStatus := line.Status
	if line.Status == model.LineStatusPending {
		line.Status = model.LineStatusValidated
	}

	if err := s.bindingSvc.BindLineTx(ctx, tx, ts, so, picked.LineID, picked.SerialNumber, actor); err != nil {
		line.Status = previousStatus
		logrus.Warnf("failed to bind line %q to serial %q from WMS feedback: %v", picked.LineID, picked.SerialNumber, err)
		lineResult.Status = PickStatusBindingFailed
		lineResult.Reason = err.Error()
		s.recordDiscrepancyTx(ctx, tx, ts, so.ID, picked.LineID,
			fmt.Sprintf("WMS picked serial %s for line %s but binding failed: %v", picked.SerialNumber, picked.LineID, err), actor)
		return lineResult
	}

	lineResult.Status = PickStatusBound
	return lineResult
}

func (s *_Service) recordDiscrepancyTx(ctx context.Context, tx storage.Tx, ts int64, orderID string, lineID string, description string, actor string) {
	exception := model.ShippingOrderException{
		ID:              util.NewUUID(),
		ShippingOrderID: orderID,
		LineID:          lineID,
		Type:            model.ExceptionTypeWmsDiscrepancy,
		Status:          model.ExceptionStatusActive,
		Description:     description,
		ResolutionPath:  discrepancyResolutionPath,
		CreatedAt:       ts,
		CreatedBy:       actor,
	}
	if err := s.orderStorage.AddException(ctx, tx, exception); err != nil {
		logrus.Errorf("failed to record WMS discrepancy for order %q line %q: %v", orderID, lineID, err)
	}
}

// ValidateSerials dry-runs a picking batch against the binding rules without
// mutating anything.
func (s *_Service) ValidateSerials(ctx context.Context, req ValidateSerialsRequest) ([]SerialValidationResult, error) {
	if err := ValidateValidateSerialsRequest(req); err != nil {
		return nil, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return nil, err
	}

	results := make([]SerialValidationResult, 0, len(req.Serials))
	for _, candidate := range req.Serials {
		result := SerialValidationResult{LineID: candidate.LineID, SerialNumber: candidate.SerialNumber, Valid: true}

		line := so.Line(candidate.LineID)
		if line == nil {
			result.Valid = false
			result.Reason = "line does not exist on this shipping order"
		} else if err := s.bindingSvc.ValidateSerialForLineTx(ctx, tx, line, candidate.SerialNumber); err != nil {
			result.Valid = false
			result.Reason = err.Error()
		}
		results = append(results, result)
	}
	return results, nil
}

// ConfirmShipment reconciles the WMS shipped-serial manifest against the
// shipment's expected serials, re-validates every binding that is about to
// ship, then delegates the irreversible confirmation to the shipment service.
// Any missing expected serial is a partial shipment and any binding gone
// invalid since picking is a discrepancy: the exception is committed, the
// shipment stays preparing and the call fails. Extra serials are logged and
// ignored.
func (s *_Service) ConfirmShipment(ctx context.Context, ts int64, req WmsConfirmShipmentRequest) (model.Shipment, error) {
	if err := ValidateWmsConfirmShipmentRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := s.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shpmt, err := s.shipmentStorage.GetShipment(ctx, tx, req.ShipmentID)
	if err != nil {
		return model.Shipment{}, err
	}
	if shpmt.Status != model.ShipmentStatusPreparing {
		return model.Shipment{}, fmt.Errorf("shipment %q has status %q, only preparing shipments can be confirmed%w",
			shpmt.ID, shpmt.Status, model.ErrShipmentNotPreparing)
	}

	missing, extra := lo.Difference(shpmt.ShippedBottleSerials, req.ShippedSerials)
	for _, serial := range extra {
		logrus.Warnf("WMS reported serial %q for shipment %q which is not part of the shipment", serial, shpmt.ID)
	}
	if len(missing) > 0 {
		exception := model.ShippingOrderException{
			ID:              util.NewUUID(),
			ShippingOrderID: shpmt.ShippingOrderID,
			Type:            model.ExceptionTypePartialShipment,
			Status:          model.ExceptionStatusActive,
			Description:     fmt.Sprintf("WMS shipment confirmation for shipment %s is missing serials %v", shpmt.ID, missing),
			ResolutionPath:  discrepancyResolutionPath,
			CreatedAt:       ts,
			CreatedBy:       req.Actor,
		}
		if err := s.orderStorage.AddException(ctx, tx, exception); err != nil {
			return model.Shipment{}, err
		}
		if err := tx.Commit(ctx); err != nil {
			return model.Shipment{}, err
		}
		return model.Shipment{}, fmt.Errorf("shipment %q confirmation is missing %d expected serials%w",
			shpmt.ID, len(missing), model.ErrPartialShipment)
	}

	// Bindings may have gone bad between picking feedback and the warehouse
	// handing the boxes to the carrier. Re-validate every shipping line before
	// anything irreversible happens.
	so, err := s.orderStorage.GetShippingOrder(ctx, tx, shpmt.ShippingOrderID)
	if err != nil {
		return model.Shipment{}, err
	}
	if validation := s.bindingSvc.ValidateAllBindingsTx(ctx, tx, &so); !validation.AllValid {
		for _, lineValidation := range validation.Results {
			if lineValidation.Valid {
				continue
			}
			s.recordDiscrepancyTx(ctx, tx, ts, so.ID, lineValidation.LineID,
				fmt.Sprintf("WMS shipment confirmation for shipment %s: binding of line %s is no longer valid: %v",
					shpmt.ID, lineValidation.LineID, lineValidation.Errors), req.Actor)
		}
		if err := tx.Commit(ctx); err != nil {
			return model.Shipment{}, err
		}
		return model.Shipment{}, fmt.Errorf("shipment %q has invalid bindings, confirmation blocked%w",
			shpmt.ID, model.ErrBindingInvalid)
	}
	_ = tx.Rollback(ctx)

	// The warehouse physically shipped every expected bottle; case breaks are
	// implicitly confirmed by the manifest.
	return s.shipmentSvc.ConfirmShipment(ctx, ts, shipment.ConfirmShipmentRequest{
		ShipmentID:         req.ShipmentID,
		TrackingNumber:     req.TrackingNumber,
		CaseBreakConfirmed: true,
		Actor:              req.Actor,
	})
}

// HandleDiscrepancy records a discrepancy reported out-of-band by the WMS.
// The exception always carries the fixed resolution options and is never
// auto-resolved.
func (s *_Service) HandleDiscrepancy(ctx context.Context, ts int64, req HandleDiscrepancyRequest) (model.ShippingOrderException, error) {
	if err := ValidateHandleDiscrepancyRequest(req); err != nil {
		return model.ShippingOrderException{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return model.ShippingOrderException{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return model.ShippingOrderException{}, err
	}

	exception := model.ShippingOrderException{
		ID:              util.NewUUID(),
		ShippingOrderID: so.ID,
		LineID:          req.LineID,
		Type:            model.ExceptionTypeWmsDiscrepancy,
		Status:          model.ExceptionStatusActive,
		Description:     req.Details,
		ResolutionPath:  discrepancyResolutionPath,
		CreatedAt:       ts,
		CreatedBy:       req.Actor,
	}
	if err := s.orderStorage.AddException(ctx, tx, exception); err != nil {
		return model.ShippingOrderException{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrderException{}, err
	}
	return exception, nil
}

// RequestRePick releases a line's late binding (when present) and rebuilds the
// picking instruction for that single line.
func (s *_Service) RequestRePick(ctx context.Context, ts int64, req RequestRePickRequest) (SendPickingInstructionsResult, error) {
	if err := ValidateRequestRePickRequest(req); err != nil {
		return SendPickingInstructionsResult{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}
	line := so.Line(req.LineID)
	if line == nil {
		return SendPickingInstructionsResult{}, fmt.Errorf("line %q not found on shipping order %q%w", req.LineID, so.ID, model.ErrLineNotFound)
	}
	if line.EarlyBindingSerial != "" {
		return SendPickingInstructionsResult{}, fmt.Errorf("line %q is early bound, re-pick cannot change its serial%w", req.LineID, model.ErrLineNotBindable)
	}

	if line.BoundBottleSerial != "" {
		if err := s.bindingSvc.UnbindLineTx(ctx, tx, ts, &so, req.LineID, req.Actor); err != nil {
			return SendPickingInstructionsResult{}, err
		}
	}
	line.Status = model.LineStatusValidated

	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return SendPickingInstructionsResult{}, err
	}

	instructions := PickingInstructions{
		MessageID:           util.NewUUID(),
		OrderID:             so.ID,
		WarehouseID:         so.WarehouseID,
		Carrier:             so.Carrier,
		PackagingPreference: so.PackagingPreference,
		SpecialInstructions: so.SpecialInstructions,
		RequestedShipDate:   so.RequestedShipDate,
		DestinationAddress:  so.DestinationAddress,
		Lines: []PickingInstructionLine{
			{
				LineID:               line.ID,
				VoucherID:            line.VoucherID,
				AllocationID:         line.AllocationID,
				WineVariantID:        line.WineVariantID,
				FormatID:             line.FormatID,
				BindingType:          BindingTypeLate,
				AllocationConstraint: line.AllocationID,
			},
		},
	}
	payload, err := json.Marshal(instructions)
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "wms.repick_requested",
		Description: fmt.Sprintf("re-pick %s requested for line %s: %s", instructions.MessageID, req.LineID, req.Reason),
		NewValues:   payload,
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return SendPickingInstructionsResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return SendPickingInstructionsResult{}, err
	}
	return SendPickingInstructionsResult{MessageID: instructions.MessageID, Payload: payload}, nil
}

// CheckPickingCompletion reports how many lines still await a pick from the
// WMS. Early-bound lines count as received.
func (s *_Service) CheckPickingCompletion(ctx context.Context, orderID string) (PickingCompletion, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return PickingCompletion{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return PickingCompletion{}, err
	}

	completion := PickingCompletion{OrderID: so.ID, EarlyBoundOnly: true}
	for i := range so.Lines {
		line := &so.Lines[i]
		if line.Status == model.LineStatusCancelled {
			continue
		}
		completion.ExpectedCount += 1
		if line.EarlyBindingSerial == "" {
			completion.EarlyBoundOnly = false
		}
		if line.IsBound() {
			completion.ReceivedCount += 1
			continue
		}
		completion.PendingLines = append(completion.PendingLines, line.ID)
	}
	completion.Complete = completion.ReceivedCount == completion.ExpectedCount
	return completion, nil
}
