// Package shipment manages the shipment lifecycle of a shipping order, from
// creation out of a fully bound picking order through confirmation, delivery
// and failure. Confirmation is the point of no return: vouchers are redeemed,
// bottles are marked shipped and ownership transfer is staged for the
// provenance ledger, all inside one transaction.
package shipment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/binding"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/provenance"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/voucher"
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CreateFromOrderRequest struct {
	OrderID       string          `json:"order_id"`       // ID of the fully bound shipping order.
	DeclaredValue decimal.Decimal `json:"declared_value"` // Declared customs/insurance value of the shipment.
	Requester     string          `json:"requester"`
}

type ConfirmShipmentRequest struct {
	ShipmentID         string `json:"shipment_id"`
	TrackingNumber     string `json:"tracking_number"`
	CaseBreakConfirmed bool   `json:"case_break_confirmed"` // Warehouse confirmed cases were broken to pick.
	Actor              string `json:"actor"`
}

type MarkDeliveredRequest struct {
	ShipmentID string `json:"shipment_id"`
	Actor      string `json:"actor"`
}

type MarkFailedRequest struct {
	ShipmentID string `json:"shipment_id"`
	Reason     string `json:"reason"`
	Actor      string `json:"actor"`
}

// ShipmentReadiness reports whether an order can produce a shipment right now.
type ShipmentReadiness struct {
	OrderID       string   `json:"order_id"`
	StatusOK      bool     `json:"status_ok"`
	AllBound      bool     `json:"all_bound"`
	UnboundLines  []string `json:"unbound_lines,omitempty"`
	BindingsValid bool     `json:"bindings_valid"`
	Errors        []string `json:"errors,omitempty"`
	Ready         bool     `json:"ready"`
}

type Service interface {
	CreateFromOrder(ctx context.Context, ts int64, req CreateFromOrderRequest) (model.Shipment, error)
	ConfirmShipment(ctx context.Context, ts int64, req ConfirmShipmentRequest) (model.Shipment, error)
	MarkDelivered(ctx context.Context, ts int64, req MarkDeliveredRequest) (model.Shipment, error)
	MarkFailed(ctx context.Context, ts int64, req MarkFailedRequest) (model.Shipment, error)
	ValidateForShipment(ctx context.Context, orderID string) (ShipmentReadiness, error)
	Get(ctx context.Context, shipmentID string) (model.Shipment, error)
	List(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error)
}

type _Service struct {
	shipmentStorage  storage.ShipmentStorage
	orderStorage     storage.ShippingOrderStorage
	inventoryStorage storage.InventoryStorage
	voucherStorage   storage.VoucherStorage
	bindingSvc       binding.Service
	voucherSvc       voucher.Service
	publisher        provenance.Publisher
}

func NewService(
	shipmentStorage storage.ShipmentStorage,
	orderStorage storage.ShippingOrderStorage,
	inventoryStorage storage.InventoryStorage,
	voucherStorage storage.VoucherStorage,
	bindingSvc binding.Service,
	voucherSvc voucher.Service,
	publisher provenance.Publisher,
) Service {
	return &_Service{
		shipmentStorage:  shipmentStorage,
		orderStorage:     orderStorage,
		inventoryStorage: inventoryStorage,
		voucherStorage:   voucherStorage,
		bindingSvc:       bindingSvc,
		voucherSvc:       voucherSvc,
		publisher:        publisher,
	}
}

// CreateFromOrder creates a preparing shipment from a picking order. Every
// non-cancelled line must be bound and every binding must pass a live re-check
// against current bottle state; the effective serial list is frozen onto the
// shipment.
func (s *_Service) CreateFromOrder(ctx context.Context, ts int64, req CreateFromOrderRequest) (model.Shipment, error) {
	if err := ValidateCreateFromOrderRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := s.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return model.Shipment{}, err
	}
	if so.Status != model.ShippingOrderStatusPicking {
		return model.Shipment{}, fmt.Errorf("shipping order %q has status %q, shipments are created from picking orders%w",
			so.ID, so.Status, model.ErrInvalidTransition)
	}

	completeness := binding.CheckAllLinesBindingOf(&so)
	if !completeness.AllBound {
		return model.Shipment{}, fmt.Errorf("shipping order %q has unbound lines %v%w", so.ID, completeness.UnboundLines, model.ErrLinesNotBound)
	}
	validation := s.bindingSvc.ValidateAllBindingsTx(ctx, tx, &so)
	if !validation.AllValid {
		return model.Shipment{}, fmt.Errorf("shipping order %q has invalid bindings%w", so.ID, model.ErrBindingInvalid)
	}

	shipment := model.Shipment{
		ID:                 util.NewUUID(),
		Version:            1,
		ShippingOrderID:    so.ID,
		Status:             model.ShipmentStatusPreparing,
		Carrier:            so.Carrier,
		DestinationAddress: so.DestinationAddress,
		DeclaredValue:      req.DeclaredValue,
		CreatedAt:          ts,
		CreatedBy:          req.Requester,
	}
	for i := range so.Lines {
		line := &so.Lines[i]
		if line.Status == model.LineStatusCancelled {
			continue
		}
		shipment.ShippedBottleSerials = append(shipment.ShippedBottleSerials, line.EffectiveSerial())
		line.Status = model.LineStatusPicked
	}

	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Requester

	if err := s.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.Shipment{}, err
	}

	newValues, _ := json.Marshal(shipment)
	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipment.created",
		Description: fmt.Sprintf("shipment %s created with %d bottles", shipment.ID, len(shipment.ShippedBottleSerials)),
		NewValues:   newValues,
		Actor:       req.Requester,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.Shipment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}
	return shipment, nil
}

// ConfirmShipment executes the irreversible dispatch in one transaction:
// every line's voucher is redeemed, every shipped bottle leaves inventory and
// an ownership transfer event is staged per bottle. Any redemption failure
// rolls everything back.
func (s *_Service) ConfirmShipment(ctx context.Context, ts int64, req ConfirmShipmentRequest) (model.Shipment, error) {
	if err := ValidateConfirmShipmentRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := s.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipment, err := s.shipmentStorage.GetShipment(ctx, tx, req.ShipmentID)
	if err != nil {
		return model.Shipment{}, err
	}
	if shipment.Status != model.ShipmentStatusPreparing {
		return model.Shipment{}, fmt.Errorf("shipment %q has status %q, only preparing shipments can be confirmed%w",
			shipment.ID, shipment.Status, model.ErrShipmentNotPreparing)
	}

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, shipment.ShippingOrderID)
	if err != nil {
		return model.Shipment{}, err
	}
	// Redemption cannot be undone, so the order must be proven shippable
	// before the first voucher is touched.
	if !so.Status.CanTransitionTo(model.ShippingOrderStatusShipped) {
		return model.Shipment{}, fmt.Errorf("shipping order %q cannot transition from %q to shipped%w",
			so.ID, so.Status, model.ErrInvalidTransition)
	}

	if err := s.redeemAllVouchersTx(ctx, tx, ts, &so, req.Actor); err != nil {
		return model.Shipment{}, err
	}
	if err := s.transferOwnershipTx(ctx, tx, ts, &so, &shipment); err != nil {
		return model.Shipment{}, err
	}

	for i := range so.Lines {
		if so.Lines[i].Status == model.LineStatusCancelled {
			continue
		}
		so.Lines[i].Status = model.LineStatusShipped
	}
	so.Status = model.ShippingOrderStatusShipped
	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor

	shipment.Status = model.ShipmentStatusShipped
	shipment.TrackingNumber = req.TrackingNumber
	shipment.CaseBreakConfirmed = req.CaseBreakConfirmed
	shipment.ShippedAt = ts
	shipment.Version += 1

	if err := s.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.Shipment{}, err
	}

	newValues, _ := json.Marshal(shipment)
	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipment.confirmed",
		Description: fmt.Sprintf("shipment %s confirmed with tracking %s", shipment.ID, req.TrackingNumber),
		NewValues:   newValues,
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.Shipment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}

	logrus.Infof("shipment %q confirmed for shipping order %q, %d vouchers redeemed", shipment.ID, so.ID, len(so.Lines))
	return shipment, nil
}

// redeemAllVouchersTx redeems every non-cancelled line's voucher. All vouchers
// are attempted so the caller sees the full failure set, but a single failure
// fails the confirmation.
func (s *_Service) redeemAllVouchersTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, actor string) error {
	var failures []string
	for i := range so.Lines {
		line := &so.Lines[i]
		if line.Status == model.LineStatusCancelled {
			continue
		}
		if err := s.voucherSvc.Redeem(ctx, ts, line.VoucherID, actor); err != nil {
			logrus.Errorf("failed to redeem voucher %q on shipping order %q: %v", line.VoucherID, so.ID, err)
			failures = append(failures, fmt.Sprintf("%s: %v", line.VoucherID, err))
			continue
		}

		v, err := s.voucherStorage.GetVoucher(ctx, tx, line.VoucherID)
		if err != nil {
			return err
		}
		v.LifecycleState = model.VoucherLifecycleRedeemed
		v.LockedForOrderID = ""
		v.Version += 1
		if err := s.voucherStorage.StoreVoucher(ctx, tx, v); err != nil {
			return err
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("voucher redemption failed for %v%w", failures, model.ErrRedemptionFailed)
	}
	return nil
}

// transferOwnershipTx marks every shipped bottle as shipped and stages one
// ownership transfer event per bottle on the provenance outbox.
func (s *_Service) transferOwnershipTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, shipment *model.Shipment) error {
	for _, serial := range shipment.ShippedBottleSerials {
		bottle, err := s.inventoryStorage.GetBottle(ctx, tx, serial)
		if err != nil {
			return err
		}
		bottle.State = model.BottleStateShipped
		bottle.Version += 1
		if err := s.inventoryStorage.StoreBottle(ctx, tx, bottle); err != nil {
			return err
		}

		event := provenance.OwnershipTransferredEvent{
			SerialNumber:    bottle.SerialNumber,
			AllocationID:    bottle.AllocationID,
			ShippingOrderID: so.ID,
			ShipmentID:      shipment.ID,
			CustomerID:      so.CustomerID,
			TransferredAt:   ts,
		}
		if err := s.publisher.PublishOwnershipTransferred(ctx, tx, ts, event); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Service) MarkDelivered(ctx context.Context, ts int64, req MarkDeliveredRequest) (model.Shipment, error) {
	if err := ValidateMarkDeliveredRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := s.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipment, err := s.shipmentStorage.GetShipment(ctx, tx, req.ShipmentID)
	if err != nil {
		return model.Shipment{}, err
	}
	if !shipment.Status.CanTransitionTo(model.ShipmentStatusDelivered) {
		return model.Shipment{}, fmt.Errorf("shipment %q cannot transition from %q to delivered%w",
			shipment.ID, shipment.Status, model.ErrShipmentTransition)
	}

	shipment.Status = model.ShipmentStatusDelivered
	shipment.DeliveredAt = ts
	shipment.Version += 1
	if err := s.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}

	// Delivery completes the parent order.
	so, err := s.orderStorage.GetShippingOrder(ctx, tx, shipment.ShippingOrderID)
	if err != nil {
		return model.Shipment{}, err
	}
	if so.Status == model.ShippingOrderStatusShipped {
		so.Status = model.ShippingOrderStatusCompleted
		so.Version += 1
		so.UpdatedAt = ts
		so.UpdatedBy = req.Actor
		if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
			return model.Shipment{}, err
		}
		err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
			EntityID:    so.ID,
			EventType:   "shipping_order.completed",
			Description: fmt.Sprintf("shipment %s delivered", shipment.ID),
			Actor:       req.Actor,
			CreatedAt:   ts,
		})
		if err != nil {
			return model.Shipment{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}
	return shipment, nil
}

// MarkFailed records a delivery failure. Redemption and ownership transfer are
// permanent; the failed shipment is handled by manual follow-up, never by
// reversing bindings.
func (s *_Service) MarkFailed(ctx context.Context, ts int64, req MarkFailedRequest) (model.Shipment, error) {
	if err := ValidateMarkFailedRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := s.shipmentStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipment, err := s.shipmentStorage.GetShipment(ctx, tx, req.ShipmentID)
	if err != nil {
		return model.Shipment{}, err
	}
	if !shipment.Status.CanTransitionTo(model.ShipmentStatusFailed) {
		return model.Shipment{}, fmt.Errorf("shipment %q cannot transition from %q to failed%w",
			shipment.ID, shipment.Status, model.ErrShipmentTransition)
	}

	shipment.Status = model.ShipmentStatusFailed
	shipment.FailedAt = ts
	shipment.Notes = append(shipment.Notes, req.Reason)
	shipment.Version += 1
	if err := s.shipmentStorage.StoreShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    shipment.ShippingOrderID,
		EventType:   "shipment.failed",
		Description: fmt.Sprintf("shipment %s failed: %s", shipment.ID, req.Reason),
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.Shipment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}
	return shipment, nil
}

// ValidateForShipment is the read-only readiness probe used before attempting
// CreateFromOrder.
func (s *_Service) ValidateForShipment(ctx context.Context, orderID string) (ShipmentReadiness, error) {
	tx, ctx, err := s.shipmentStorage.CreateTx(ctx)
	if err != nil {
		return ShipmentReadiness{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return ShipmentReadiness{}, err
	}

	readiness := ShipmentReadiness{OrderID: so.ID}
	readiness.StatusOK = so.Status == model.ShippingOrderStatusPicking
	if !readiness.StatusOK {
		readiness.Errors = append(readiness.Errors, fmt.Sprintf("order status is %s, expected picking", so.Status))
	}

	completeness := binding.CheckAllLinesBindingOf(&so)
	readiness.AllBound = completeness.AllBound
	readiness.UnboundLines = completeness.UnboundLines

	validation := s.bindingSvc.ValidateAllBindingsTx(ctx, tx, &so)
	readiness.BindingsValid = validation.AllValid
	for _, result := range validation.Results {
		readiness.Errors = append(readiness.Errors, result.Errors...)
	}

	readiness.Ready = readiness.StatusOK && readiness.AllBound && readiness.BindingsValid
	return readiness, nil
}

func (s *_Service) Get(ctx context.Context, shipmentID string) (model.Shipment, error) {
	tx, ctx, err := s.shipmentStorage.CreateTx(ctx)
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.shipmentStorage.GetShipment(ctx, tx, shipmentID)
}

func (s *_Service) List(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	tx, ctx, err := s.shipmentStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.shipmentStorage.ListShipments(ctx, tx, req)
}
