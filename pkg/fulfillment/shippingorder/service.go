// Package shippingorder owns the shipping order state machine. Voucher
// eligibility is evaluated by one predicate at three checkpoints (creation,
// planning, pre-picking); transitions lock and unlock vouchers through the
// voucherlock service.
package shippingorder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/binding"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/voucherlock"
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// CustomerDirectory is the external customer registry. Only the active flag
// matters to this core.
type CustomerDirectory interface {
	IsActiveCustomer(ctx context.Context, customerID string) (bool, error)
}

type CreateShippingOrderRequest struct {
	CustomerID          string                    `json:"customer_id"`
	VoucherIDs          []string                  `json:"voucher_ids"`
	WarehouseID         string                    `json:"warehouse_id"`
	Carrier             string                    `json:"carrier"`
	PackagingPreference model.PackagingPreference `json:"packaging_preference"`
	DestinationAddress  string                    `json:"destination_address"`
	RequestedShipDate   string                    `json:"requested_ship_date"`
	SpecialInstructions string                    `json:"special_instructions"`
	Requester           string                    `json:"requester"`
}

type TransitionRequest struct {
	OrderID string                    `json:"order_id"`
	Target  model.ShippingOrderStatus `json:"target"`
	Actor   string                    `json:"actor"`
}

type CancelRequest struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
	Actor   string `json:"actor"`
}

type VoucherRequest struct {
	OrderID   string `json:"order_id"`
	VoucherID string `json:"voucher_id"`
	Actor     string `json:"actor"`
}

type ResolveExceptionRequest struct {
	OrderID     string `json:"order_id"`
	ExceptionID string `json:"exception_id"`
	Actor       string `json:"actor"`
}

// EligibilityResult carries the first failing reason only. Surfacing a single
// precise reason keeps operator messaging unambiguous.
type EligibilityResult struct {
	VoucherID string `json:"voucher_id"`
	Eligible  bool   `json:"eligible"`
	Reason    string `json:"reason,omitempty"`
}

type EligibilitySummary struct {
	OrderID  string              `json:"order_id"`
	Blocked  bool                `json:"blocked"`
	Vouchers []EligibilityResult `json:"vouchers"`
}

type Service interface {
	Create(ctx context.Context, ts int64, req CreateShippingOrderRequest) (model.ShippingOrder, error)
	Get(ctx context.Context, id string) (model.ShippingOrder, error)
	List(ctx context.Context, req storage.ListShippingOrdersRequest) (storage.ListShippingOrdersResult, error)
	TransitionTo(ctx context.Context, ts int64, req TransitionRequest) (model.ShippingOrder, error)
	Cancel(ctx context.Context, ts int64, req CancelRequest) (model.ShippingOrder, error)
	AddVoucher(ctx context.Context, ts int64, req VoucherRequest) (model.ShippingOrder, error)
	RemoveVoucher(ctx context.Context, ts int64, req VoucherRequest) (model.ShippingOrder, error)

	ListExceptions(ctx context.Context, req storage.ListExceptionsRequest) (storage.ListExceptionsResult, error)
	ResolveException(ctx context.Context, ts int64, req ResolveExceptionRequest) (model.ShippingOrderException, error)

	GetVoucherEligibilitySummary(ctx context.Context, orderID string) (EligibilitySummary, error)
	CheckIfBlocked(ctx context.Context, orderID string) (bool, error)
	CanProceed(ctx context.Context, orderID string) (bool, error)
}

type _Service struct {
	orderStorage   storage.ShippingOrderStorage
	voucherStorage storage.VoucherStorage
	lockSvc        voucherlock.LockService
	bindingSvc     binding.Service
	customers      CustomerDirectory
}

func NewService(
	orderStorage storage.ShippingOrderStorage,
	voucherStorage storage.VoucherStorage,
	lockSvc voucherlock.LockService,
	bindingSvc binding.Service,
	customers CustomerDirectory,
) Service {
	return &_Service{
		orderStorage:   orderStorage,
		voucherStorage: voucherStorage,
		lockSvc:        lockSvc,
		bindingSvc:     bindingSvc,
		customers:      customers,
	}
}

func (s *_Service) Create(ctx context.Context, ts int64, req CreateShippingOrderRequest) (model.ShippingOrder, error) {
	if err := ValidateCreateShippingOrderRequest(req); err != nil {
		return model.ShippingOrder{}, err
	}
	if duplicates := lo.FindDuplicates(req.VoucherIDs); len(duplicates) > 0 {
		return model.ShippingOrder{}, fmt.Errorf("voucher %q appears more than once%w", duplicates[0], model.ErrDuplicateVoucher)
	}

	active, err := s.customers.IsActiveCustomer(ctx, req.CustomerID)
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if !active {
		return model.ShippingOrder{}, fmt.Errorf("customer %q is not active%w", req.CustomerID, model.ErrInvalidParameter)
	}

	so := model.ShippingOrder{
		ID:                  util.NewUUID(),
		Version:             1,
		CustomerID:          req.CustomerID,
		WarehouseID:         req.WarehouseID,
		Carrier:             req.Carrier,
		PackagingPreference: req.PackagingPreference,
		SpecialInstructions: req.SpecialInstructions,
		RequestedShipDate:   req.RequestedShipDate,
		DestinationAddress:  req.DestinationAddress,
		Status:              model.ShippingOrderStatusDraft,
		CreatedAt:           ts,
		CreatedBy:           req.Requester,
		UpdatedAt:           ts,
		UpdatedBy:           req.Requester,
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.ShippingOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, voucherID := range req.VoucherIDs {
		v, err := s.voucherStorage.GetVoucher(ctx, tx, voucherID)
		if err != nil {
			return model.ShippingOrder{}, err
		}
		if result := s.checkVoucherEligibilityTx(ctx, tx, v, &so); !result.Eligible {
			return model.ShippingOrder{}, fmt.Errorf("voucher %q: %s%w", voucherID, result.Reason, model.ErrVoucherIneligible)
		}
		so.Lines = append(so.Lines, newLine(so.ID, v))
	}

	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}

	newValues, _ := json.Marshal(so)
	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.created",
		Description: fmt.Sprintf("shipping order created with %d lines", len(so.Lines)),
		NewValues:   newValues,
		Actor:       req.Requester,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

// newLine freezes the voucher's allocation lineage onto the line and carries
// over upstream early-binding personalization.
func newLine(orderID string, v model.Voucher) model.ShippingOrderLine {
	return model.ShippingOrderLine{
		ID:                 util.NewUUID(),
		ShippingOrderID:    orderID,
		VoucherID:          v.ID,
		AllocationID:       v.AllocationID,
		Status:             model.LineStatusPending,
		EarlyBindingSerial: v.EarlyBindingSerial,
	}
}

func (s *_Service) Get(ctx context.Context, id string) (model.ShippingOrder, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return model.ShippingOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.orderStorage.GetShippingOrder(ctx, tx, id)
}

func (s *_Service) List(ctx context.Context, req storage.ListShippingOrdersRequest) (storage.ListShippingOrdersResult, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListShippingOrdersResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.orderStorage.ListShippingOrders(ctx, tx, req)
}

func (s *_Service) TransitionTo(ctx context.Context, ts int64, req TransitionRequest) (model.ShippingOrder, error) {
	if err := ValidateTransitionRequest(req); err != nil {
		return model.ShippingOrder{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.ShippingOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return model.ShippingOrder{}, err
	}

	if !so.Status.CanTransitionTo(req.Target) {
		return model.ShippingOrder{}, fmt.Errorf("shipping order %q cannot transition from %q to %q%w", so.ID, so.Status, req.Target, model.ErrInvalidTransition)
	}

	// Checkpoints 2 and 3: entering planned or picking re-validates every
	// voucher. Any ineligible voucher blocks the transition; the exceptions
	// are committed while the order stays untouched.
	if req.Target == model.ShippingOrderStatusPlanned || req.Target == model.ShippingOrderStatusPicking {
		ineligible, err := s.ineligibleVouchersTx(ctx, tx, &so)
		if err != nil {
			return model.ShippingOrder{}, err
		}
		if len(ineligible) > 0 {
			for _, result := range ineligible {
				line := so.LineByVoucher(result.VoucherID)
				exception := model.ShippingOrderException{
					ID:              util.NewUUID(),
					ShippingOrderID: so.ID,
					Type:            model.ExceptionTypeVoucherIneligible,
					Status:          model.ExceptionStatusActive,
					Description:     fmt.Sprintf("voucher %s is not eligible: %s", result.VoucherID, result.Reason),
					ResolutionPath:  "resolve the voucher issue in the voucher system, remove the voucher from the order, or cancel the order",
					CreatedAt:       ts,
					CreatedBy:       req.Actor,
				}
				if line != nil {
					exception.LineID = line.ID
				}
				if err := s.orderStorage.AddException(ctx, tx, exception); err != nil {
					return model.ShippingOrder{}, err
				}
			}
			if err := tx.Commit(ctx); err != nil {
				return model.ShippingOrder{}, err
			}
			return model.ShippingOrder{}, fmt.Errorf("%d vouchers are not eligible, transition to %q blocked%w", len(ineligible), req.Target, model.ErrVoucherIneligible)
		}
	}

	oldStatus := so.Status
	so.Status = req.Target

	// Post-transition side effects, inside the same transaction.
	if req.Target.RequiresVoucherLock() && !oldStatus.RequiresVoucherLock() {
		if err := s.lockSvc.LockAllForShippingOrder(ctx, tx, ts, &so, req.Actor); err != nil {
			return model.ShippingOrder{}, err
		}
	}
	if req.Target == model.ShippingOrderStatusPicking {
		for i := range so.Lines {
			if so.Lines[i].Status == model.LineStatusPending {
				so.Lines[i].Status = model.LineStatusValidated
			}
		}
	}
	if req.Target == model.ShippingOrderStatusCancelled && oldStatus.RequiresVoucherLock() {
		result := s.lockSvc.UnlockAllForShippingOrder(ctx, tx, ts, &so, req.Actor)
		if len(result.Failed) > 0 {
			logrus.Warnf("failed to unlock %d vouchers while cancelling shipping order %q", len(result.Failed), so.ID)
		}
	}

	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.transitioned",
		Description: fmt.Sprintf("shipping order transitioned from %s to %s", oldStatus, req.Target),
		OldValues:   json.RawMessage(fmt.Sprintf(`{"status":%q}`, oldStatus)),
		NewValues:   json.RawMessage(fmt.Sprintf(`{"status":%q}`, req.Target)),
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

// Cancel cancels the order. Unbinding bound lines and unlocking vouchers are
// best-effort compensating actions; their failures are logged per item and
// never abort the cancellation.
func (s *_Service) Cancel(ctx context.Context, ts int64, req CancelRequest) (model.ShippingOrder, error) {
	if err := ValidateCancelRequest(req); err != nil {
		return model.ShippingOrder{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.ShippingOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if !so.Status.CanBeCancelled() {
		return model.ShippingOrder{}, fmt.Errorf("shipping order %q in status %q cannot be cancelled%w", so.ID, so.Status, model.ErrOrderNotCancellable)
	}

	oldStatus := so.Status
	if oldStatus == model.ShippingOrderStatusPicking {
		for i := range so.Lines {
			line := &so.Lines[i]
			if line.BoundBottleSerial == "" {
				continue
			}
			if err := s.bindingSvc.UnbindLineTx(ctx, tx, ts, &so, line.ID, req.Actor); err != nil {
				logrus.Warnf("failed to unbind line %q while cancelling shipping order %q: %v", line.ID, so.ID, err)
			}
		}
	}

	result := s.lockSvc.UnlockAllForShippingOrder(ctx, tx, ts, &so, req.Actor)
	if len(result.Failed) > 0 {
		logrus.Warnf("failed to unlock %d vouchers while cancelling shipping order %q", len(result.Failed), so.ID)
	}

	for i := range so.Lines {
		if !so.Lines[i].Status.IsTerminal() {
			so.Lines[i].Status = model.LineStatusCancelled
		}
	}
	so.Status = model.ShippingOrderStatusCancelled
	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor

	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.cancelled",
		Description: fmt.Sprintf("shipping order cancelled from status %s: %s", oldStatus, req.Reason),
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

func (s *_Service) ListExceptions(ctx context.Context, req storage.ListExceptionsRequest) (storage.ListExceptionsResult, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListExceptionsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.orderStorage.ListExceptions(ctx, tx, req)
}

// ResolveException marks an exception resolved by the operator. Nothing else
// changes; the underlying condition is fixed out-of-band.
func (s *_Service) ResolveException(ctx context.Context, ts int64, req ResolveExceptionRequest) (model.ShippingOrderException, error) {
	if err := ValidateResolveExceptionRequest(req); err != nil {
		return model.ShippingOrderException{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return model.ShippingOrderException{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	exception, err := s.orderStorage.GetException(ctx, tx, req.ExceptionID)
	if err != nil {
		return model.ShippingOrderException{}, err
	}
	if exception.ShippingOrderID != req.OrderID {
		return model.ShippingOrderException{}, fmt.Errorf("exception %q does not belong to shipping order %q%w", req.ExceptionID, req.OrderID, model.ErrExceptionNotFound)
	}
	if exception.Status == model.ExceptionStatusResolved {
		return exception, tx.Commit(ctx)
	}

	if err := s.orderStorage.ResolveException(ctx, tx, req.ExceptionID, ts, req.Actor); err != nil {
		return model.ShippingOrderException{}, err
	}
	exception.Status = model.ExceptionStatusResolved
	exception.ResolvedAt = ts
	exception.ResolvedBy = req.Actor

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    exception.ShippingOrderID,
		EventType:   "shipping_order.exception_resolved",
		Description: fmt.Sprintf("exception %s resolved", exception.ID),
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.ShippingOrderException{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrderException{}, err
	}
	return exception, nil
}

func (s *_Service) AddVoucher(ctx context.Context, ts int64, req VoucherRequest) (model.ShippingOrder, error) {
	if err := ValidateVoucherRequest(req); err != nil {
		return model.ShippingOrder{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.ShippingOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if !so.Status.CanBeEdited() {
		return model.ShippingOrder{}, fmt.Errorf("shipping order %q in status %q cannot be edited%w", so.ID, so.Status, model.ErrOrderNotEditable)
	}
	if so.LineByVoucher(req.VoucherID) != nil {
		return model.ShippingOrder{}, fmt.Errorf("voucher %q is already on shipping order %q%w", req.VoucherID, so.ID, model.ErrDuplicateVoucher)
	}

	v, err := s.voucherStorage.GetVoucher(ctx, tx, req.VoucherID)
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if result := s.checkVoucherEligibilityTx(ctx, tx, v, &so); !result.Eligible {
		return model.ShippingOrder{}, fmt.Errorf("voucher %q: %s%w", req.VoucherID, result.Reason, model.ErrVoucherIneligible)
	}

	so.Lines = append(so.Lines, newLine(so.ID, v))
	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.voucher_added",
		Description: fmt.Sprintf("voucher %s added to shipping order", req.VoucherID),
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

func (s *_Service) RemoveVoucher(ctx context.Context, ts int64, req VoucherRequest) (model.ShippingOrder, error) {
	if err := ValidateVoucherRequest(req); err != nil {
		return model.ShippingOrder{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.ShippingOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if !so.Status.CanBeEdited() {
		return model.ShippingOrder{}, fmt.Errorf("shipping order %q in status %q cannot be edited%w", so.ID, so.Status, model.ErrOrderNotEditable)
	}
	line := so.LineByVoucher(req.VoucherID)
	if line == nil {
		return model.ShippingOrder{}, fmt.Errorf("voucher %q is not on shipping order %q%w", req.VoucherID, so.ID, model.ErrVoucherNotFound)
	}

	so.Lines = lo.Filter(so.Lines, func(l model.ShippingOrderLine, _ int) bool {
		return l.VoucherID != req.VoucherID
	})
	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}

	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.voucher_removed",
		Description: fmt.Sprintf("voucher %s removed from shipping order", req.VoucherID),
		Actor:       req.Actor,
		CreatedAt:   ts,
	})
	if err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}
