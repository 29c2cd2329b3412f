// Package binding implements late binding of shipping order lines to
// serialized bottles. Binding is allocation-lineage constrained: the bottle's
// allocation must equal the line's frozen allocation, with no substitution
// path. Bind-time checks are authoritative; the eligible-inventory cache is
// advisory only.
package binding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/cache"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const (
	inventoryCacheTTL    = 300 * time.Second
	inventoryCachePrefix = "late_binding_inventory"
)

type AllocationAvailability string

const (
	AllocationSufficient            AllocationAvailability = "sufficient"
	AllocationInsufficient          AllocationAvailability = "insufficient"
	AllocationIntactCaseUnavailable AllocationAvailability = "intact_case_unavailable"
)

type BindVoucherToBottleRequest struct {
	OrderID      string `json:"order_id"`
	LineID       string `json:"line_id"`
	SerialNumber string `json:"serial_number"`
	Actor        string `json:"actor"`
}

type UnbindLineRequest struct {
	OrderID string `json:"order_id"`
	LineID  string `json:"line_id"`
	Actor   string `json:"actor"`
}

type RequestEligibleInventoryRequest struct {
	OrderID   string `json:"order_id"`
	Requester string `json:"requester"`
}

// AllocationInventory is the availability report for one allocation.
type AllocationInventory struct {
	AllocationID     string                 `json:"allocation_id"`
	RequiredQuantity int                    `json:"required_quantity"`
	AvailableBottles int                    `json:"available_bottles"`
	IntactCase       bool                   `json:"intact_case"`
	Status           AllocationAvailability `json:"status"`
}

type EligibleInventoryResult struct {
	OrderID                string                `json:"order_id"`
	Allocations            []AllocationInventory `json:"allocations"`
	AllAvailable           bool                  `json:"all_available"`
	PreserveCasesSatisfied bool                  `json:"preserve_cases_satisfied"`
}

// BindingValidation is the result of re-checking an existing binding.
type BindingValidation struct {
	LineID string   `json:"line_id"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type BindingCompleteness struct {
	AllBound     bool     `json:"all_bound"`
	UnboundLines []string `json:"unbound_lines,omitempty"`
}

type AllBindingsValidation struct {
	AllValid bool                `json:"all_valid"`
	Results  []BindingValidation `json:"results"`
}

type Service interface {
	RequestEligibleInventory(ctx context.Context, ts int64, req RequestEligibleInventoryRequest) (EligibleInventoryResult, error)
	BindVoucherToBottle(ctx context.Context, ts int64, req BindVoucherToBottleRequest) (model.ShippingOrder, error)
	UnbindLine(ctx context.Context, ts int64, req UnbindLineRequest) (model.ShippingOrder, error)
	ValidateBinding(ctx context.Context, orderID string, lineID string) (BindingValidation, error)
	ValidateEarlyBinding(ctx context.Context, ts int64, orderID string, lineID string, actor string) (BindingValidation, error)
	CheckAllLinesBinding(ctx context.Context, orderID string) (BindingCompleteness, error)
	ValidateAllBindings(ctx context.Context, orderID string) (AllBindingsValidation, error)
	ClearInventoryCache(allocationID string, warehouseID string)

	// Transaction-level operations for callers composing larger units of
	// work (WMS feedback batches, order cancellation, shipment creation).
	// They mutate the order in memory; the caller stores it.
	BindLineTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, lineID string, serialNumber string, actor string) error
	UnbindLineTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, lineID string, actor string) error
	ValidateBindingTx(ctx context.Context, tx storage.Tx, line *model.ShippingOrderLine) BindingValidation
	ValidateAllBindingsTx(ctx context.Context, tx storage.Tx, so *model.ShippingOrder) AllBindingsValidation
	ValidateSerialForLineTx(ctx context.Context, tx storage.Tx, line *model.ShippingOrderLine, serialNumber string) error
}

type _Service struct {
	inventoryStorage storage.InventoryStorage
	orderStorage     storage.ShippingOrderStorage
	cache            cache.Cache
}

func NewService(inventoryStorage storage.InventoryStorage, orderStorage storage.ShippingOrderStorage, invCache cache.Cache) Service {
	return &_Service{
		inventoryStorage: inventoryStorage,
		orderStorage:     orderStorage,
		cache:            invCache,
	}
}

type cachedAvailability struct {
	AvailableBottles int  `json:"available_bottles"`
	IntactCase       bool `json:"intact_case"`
}

func inventoryCacheKey(allocationID string, warehouseID string) string {
	if warehouseID == "" {
		warehouseID = "all"
	}
	return fmt.Sprintf("%s:%s:%s", inventoryCachePrefix, allocationID, warehouseID)
}

func (s *_Service) RequestEligibleInventory(ctx context.Context, ts int64, req RequestEligibleInventoryRequest) (EligibleInventoryResult, error) {
	if err := ValidateRequestEligibleInventoryRequest(req); err != nil {
		return EligibleInventoryResult{}, err
	}

	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return EligibleInventoryResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, req.OrderID)
	if err != nil {
		return EligibleInventoryResult{}, err
	}

	// Required quantity per allocation is the line count on that allocation.
	required := make(map[string]int)
	order := make([]string, 0, len(so.Lines))
	for i := range so.Lines {
		allocationID := so.Lines[i].AllocationID
		if _, seen := required[allocationID]; !seen {
			order = append(order, allocationID)
		}
		required[allocationID] += 1
	}

	result := EligibleInventoryResult{
		OrderID:                so.ID,
		AllAvailable:           true,
		PreserveCasesSatisfied: true,
	}
	preserveCases := so.PackagingPreference == model.PackagingPreferencePreserveCases

	for _, allocationID := range order {
		availability, err := s.allocationAvailability(ctx, tx, allocationID, so.WarehouseID)
		if err != nil {
			return EligibleInventoryResult{}, err
		}

		entry := AllocationInventory{
			AllocationID:     allocationID,
			RequiredQuantity: required[allocationID],
			AvailableBottles: availability.AvailableBottles,
			IntactCase:       availability.IntactCase,
			Status:           AllocationSufficient,
		}
		if availability.AvailableBottles < required[allocationID] {
			entry.Status = AllocationInsufficient
			result.AllAvailable = false
		} else if preserveCases && !availability.IntactCase {
			entry.Status = AllocationIntactCaseUnavailable
		}
		if preserveCases && !availability.IntactCase {
			result.PreserveCasesSatisfied = false
		}
		result.Allocations = append(result.Allocations, entry)
	}

	newValues, _ := json.Marshal(result)
	err = s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.inventory_requested",
		Description: fmt.Sprintf("eligible inventory requested for %d allocations", len(result.Allocations)),
		NewValues:   newValues,
		Actor:       req.Requester,
		CreatedAt:   ts,
	})
	if err != nil {
		return EligibleInventoryResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return EligibleInventoryResult{}, err
	}
	return result, nil
}

// allocationAvailability serves availability cache-first within the TTL and
// falls back to counting Stored bottles and intact cases.
func (s *_Service) allocationAvailability(ctx context.Context, tx storage.Tx, allocationID string, warehouseID string) (cachedAvailability, error) {
	key := inventoryCacheKey(allocationID, warehouseID)
	if raw, ok := s.cache.Get(key); ok {
		var cached cachedAvailability
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.cache.Invalidate(key)
	}

	bottles, err := s.inventoryStorage.ListBottles(ctx, tx, storage.ListBottlesRequest{
		AllocationID: allocationID,
		WarehouseID:  warehouseID,
		States:       []model.BottleState{model.BottleStateStored},
	})
	if err != nil {
		return cachedAvailability{}, err
	}
	cases, err := s.inventoryStorage.ListCases(ctx, tx, storage.ListCasesRequest{
		AllocationID:      allocationID,
		WarehouseID:       warehouseID,
		IntegrityStatuses: []model.CaseIntegrityStatus{model.CaseIntegrityIntact},
	})
	if err != nil {
		return cachedAvailability{}, err
	}

	availability := cachedAvailability{
		AvailableBottles: bottles.Total,
		IntactCase:       cases.Total > 0,
	}
	if raw, err := json.Marshal(availability); err == nil {
		s.cache.Put(key, raw, inventoryCacheTTL)
	}
	return availability, nil
}

func (s *_Service) ClearInventoryCache(allocationID string, warehouseID string) {
	s.cache.Invalidate(inventoryCacheKey(allocationID, warehouseID))
	s.cache.Invalidate(inventoryCacheKey(allocationID, ""))
}

func (s *_Service) BindVoucherToBottle(ctx context.Context, ts int64, req BindVoucherToBottleRequest) (model.ShippingOrder, error) {
	if err := ValidateBindVoucherToBottleRequest(req); err != nil {
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

	if err := s.BindLineTx(ctx, tx, ts, &so, req.LineID, req.SerialNumber, req.Actor); err != nil {
		return model.ShippingOrder{}, err
	}

	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

// BindLineTx performs the bind inside the caller's transaction. All
// preconditions are checked against freshly locked rows; any violation leaves
// the order and the bottle untouched.
func (s *_Service) BindLineTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, lineID string, serialNumber string, actor string) error {
	line := so.Line(lineID)
	if line == nil {
		return fmt.Errorf("line %q not found on shipping order %q%w", lineID, so.ID, model.ErrLineNotFound)
	}
	if !line.Status.AllowsBinding() {
		return fmt.Errorf("line %q has status %q which does not allow binding%w", lineID, line.Status, model.ErrLineNotBindable)
	}
	if line.IsBound() {
		return fmt.Errorf("line %q is already bound to serial %q%w", lineID, line.EffectiveSerial(), model.ErrLineAlreadyBound)
	}

	bottle, err := s.inventoryStorage.GetBottle(ctx, tx, serialNumber)
	if errors.Is(err, model.ErrBottleNotFound) {
		return fmt.Errorf("bottle %q does not exist%w", serialNumber, model.ErrBottleNotFound)
	}
	if err != nil {
		return err
	}

	if err := s.validateBottleForLineTx(ctx, tx, line, bottle); err != nil {
		return err
	}

	bottle.State = model.BottleStateReservedForPicking
	bottle.Version += 1
	if err := s.inventoryStorage.StoreBottle(ctx, tx, bottle); err != nil {
		return err
	}

	line.BoundBottleSerial = bottle.SerialNumber
	line.BoundCaseID = bottle.CaseID
	line.BindingConfirmedAt = ts
	line.BindingConfirmedBy = actor

	newValues, _ := json.Marshal(line)
	return s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.line_bound",
		Description: fmt.Sprintf("line %s bound to bottle %s", lineID, serialNumber),
		NewValues:   newValues,
		Actor:       actor,
		CreatedAt:   ts,
	})
}

// ValidateSerialForLineTx checks a candidate serial against the line's
// allocation lineage, bottle state and binding exclusivity. It performs no
// mutation and is the single rule set shared by direct binds and WMS feedback.
func (s *_Service) ValidateSerialForLineTx(ctx context.Context, tx storage.Tx, line *model.ShippingOrderLine, serialNumber string) error {
	bottle, err := s.inventoryStorage.GetBottle(ctx, tx, serialNumber)
	if err != nil {
		return err
	}
	return s.validateBottleForLineTx(ctx, tx, line, bottle)
}

func (s *_Service) validateBottleForLineTx(ctx context.Context, tx storage.Tx, line *model.ShippingOrderLine, bottle model.SerializedBottle) error {
	// Hard lineage constraint. Never relaxed for substitution.
	if bottle.AllocationID != line.AllocationID {
		return fmt.Errorf("bottle %q has allocation %q but line %q requires allocation %q%w",
			bottle.SerialNumber, bottle.AllocationID, line.ID, line.AllocationID, model.ErrAllocationMismatch)
	}
	if bottle.State != model.BottleStateStored {
		return fmt.Errorf("bottle %q is in state %q, only stored bottles can be bound%w", bottle.SerialNumber, bottle.State, model.ErrBottleNotAvailable)
	}

	active, err := s.inventoryStorage.GetActiveBindingForBottle(ctx, tx, bottle.SerialNumber)
	if err != nil {
		return err
	}
	if active != nil && active.LineID != line.ID {
		return fmt.Errorf("bottle %q is already bound to line %q of shipping order %q%w",
			bottle.SerialNumber, active.LineID, active.ShippingOrderID, model.ErrBottleAlreadyBound)
	}
	return nil
}

func (s *_Service) UnbindLine(ctx context.Context, ts int64, req UnbindLineRequest) (model.ShippingOrder, error) {
	if err := ValidateUnbindLineRequest(req); err != nil {
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

	if err := s.UnbindLineTx(ctx, tx, ts, &so, req.LineID, req.Actor); err != nil {
		return model.ShippingOrder{}, err
	}

	so.Version += 1
	so.UpdatedAt = ts
	so.UpdatedBy = req.Actor
	if err := s.orderStorage.StoreShippingOrder(ctx, tx, so); err != nil {
		return model.ShippingOrder{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

// UnbindLineTx reverses a late binding inside the caller's transaction.
// Shipped lines are permanent and cannot be unbound. The bottle returns to
// stored only when it is still reserved for picking.
func (s *_Service) UnbindLineTx(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, lineID string, actor string) error {
	line := so.Line(lineID)
	if line == nil {
		return fmt.Errorf("line %q not found on shipping order %q%w", lineID, so.ID, model.ErrLineNotFound)
	}
	if line.Status == model.LineStatusShipped {
		return fmt.Errorf("line %q is shipped, binding is permanent%w", lineID, model.ErrLineShipped)
	}
	if line.BoundBottleSerial == "" {
		return fmt.Errorf("line %q has no late binding to remove%w", lineID, model.ErrLineNotBound)
	}

	bottle, err := s.inventoryStorage.GetBottle(ctx, tx, line.BoundBottleSerial)
	if err != nil {
		return err
	}
	if bottle.State == model.BottleStateReservedForPicking {
		bottle.State = model.BottleStateStored
		bottle.Version += 1
		if err := s.inventoryStorage.StoreBottle(ctx, tx, bottle); err != nil {
			return err
		}
	}

	oldValues, _ := json.Marshal(line)
	previousSerial := line.BoundBottleSerial
	line.BoundBottleSerial = ""
	line.BoundCaseID = ""
	line.BindingConfirmedAt = 0
	line.BindingConfirmedBy = ""

	return s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    so.ID,
		EventType:   "shipping_order.line_unbound",
		Description: fmt.Sprintf("line %s unbound from bottle %s", lineID, previousSerial),
		OldValues:   oldValues,
		Actor:       actor,
		CreatedAt:   ts,
	})
}

func (s *_Service) ValidateBinding(ctx context.Context, orderID string, lineID string) (BindingValidation, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return BindingValidation{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return BindingValidation{}, err
	}
	line := so.Line(lineID)
	if line == nil {
		return BindingValidation{}, fmt.Errorf("line %q not found on shipping order %q%w", lineID, orderID, model.ErrLineNotFound)
	}

	validation := s.ValidateBindingTx(ctx, tx, line)
	return validation, nil
}

// ValidateBindingTx re-checks a bound line's bottle: existence, lineage and
// state. Early bindings are validated against the same rules.
func (s *_Service) ValidateBindingTx(ctx context.Context, tx storage.Tx, line *model.ShippingOrderLine) BindingValidation {
	validation := BindingValidation{LineID: line.ID, Valid: true}
	fail := func(format string, args ...any) {
		validation.Valid = false
		validation.Errors = append(validation.Errors, fmt.Sprintf(format, args...))
	}

	serial := line.EffectiveSerial()
	if serial == "" {
		fail("line %s is not bound", line.ID)
		logrus.Debugf("binding validation failed for line %q: not bound", line.ID)
		return validation
	}

	bottle, err := s.inventoryStorage.GetBottle(ctx, tx, serial)
	if errors.Is(err, model.ErrBottleNotFound) {
		fail("bottle %s no longer exists", serial)
		logrus.Warnf("binding validation failed for line %q: bottle %q missing", line.ID, serial)
		return validation
	}
	if err != nil {
		fail("bottle %s could not be loaded: %v", serial, err)
		return validation
	}

	if bottle.AllocationID != line.AllocationID {
		fail("bottle %s allocation %s does not match line allocation %s", serial, bottle.AllocationID, line.AllocationID)
	}
	if bottle.State != model.BottleStateStored && bottle.State != model.BottleStateReservedForPicking {
		fail("bottle %s is in state %s", serial, bottle.State)
	}

	if validation.Valid {
		logrus.Debugf("binding validation passed for line %q serial %q", line.ID, serial)
	} else {
		logrus.Warnf("binding validation failed for line %q serial %q: %v", line.ID, serial, validation.Errors)
	}
	return validation
}

// ValidateEarlyBinding validates the immutable early-bound serial of a line.
// On any failure an early_binding_failed exception is created and the binding
// is reported invalid. There is no fallback to late binding.
func (s *_Service) ValidateEarlyBinding(ctx context.Context, ts int64, orderID string, lineID string, actor string) (BindingValidation, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return BindingValidation{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return BindingValidation{}, err
	}
	line := so.Line(lineID)
	if line == nil {
		return BindingValidation{}, fmt.Errorf("line %q not found on shipping order %q%w", lineID, orderID, model.ErrLineNotFound)
	}
	if line.EarlyBindingSerial == "" {
		return BindingValidation{}, fmt.Errorf("line %q has no early binding%w", lineID, model.ErrLineNotBound)
	}

	validation := s.ValidateBindingTx(ctx, tx, line)
	if !validation.Valid {
		exception := model.ShippingOrderException{
			ID:              util.NewUUID(),
			ShippingOrderID: so.ID,
			LineID:          line.ID,
			Type:            model.ExceptionTypeEarlyBindingFailed,
			Status:          model.ExceptionStatusActive,
			Description:     fmt.Sprintf("early binding of serial %s failed validation: %v", line.EarlyBindingSerial, validation.Errors),
			ResolutionPath:  "resolve the bottle issue manually or cancel the shipping order; early bindings never fall back to late binding",
			CreatedAt:       ts,
			CreatedBy:       actor,
		}
		if err := s.orderStorage.AddException(ctx, tx, exception); err != nil {
			return BindingValidation{}, err
		}
		if err := tx.Commit(ctx); err != nil {
			return BindingValidation{}, err
		}
	}
	return validation, nil
}

func (s *_Service) CheckAllLinesBinding(ctx context.Context, orderID string) (BindingCompleteness, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return BindingCompleteness{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return BindingCompleteness{}, err
	}
	return CheckAllLinesBindingOf(&so), nil
}

// CheckAllLinesBindingOf reports binding completeness of an order already in
// memory. Cancelled lines are ignored.
func CheckAllLinesBindingOf(so *model.ShippingOrder) BindingCompleteness {
	completeness := BindingCompleteness{AllBound: true}
	for i := range so.Lines {
		line := &so.Lines[i]
		if line.Status == model.LineStatusCancelled {
			continue
		}
		if !line.IsBound() {
			completeness.AllBound = false
			completeness.UnboundLines = append(completeness.UnboundLines, line.ID)
		}
	}
	return completeness
}

func (s *_Service) ValidateAllBindings(ctx context.Context, orderID string) (AllBindingsValidation, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return AllBindingsValidation{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return AllBindingsValidation{}, err
	}
	return s.ValidateAllBindingsTx(ctx, tx, &so), nil
}

// ValidateAllBindingsTx validates every non-cancelled line's binding inside
// the caller's transaction. Used as the gate before shipment creation.
func (s *_Service) ValidateAllBindingsTx(ctx context.Context, tx storage.Tx, so *model.ShippingOrder) AllBindingsValidation {
	result := AllBindingsValidation{AllValid: true}
	for i := range so.Lines {
		line := &so.Lines[i]
		if line.Status == model.LineStatusCancelled {
			continue
		}
		validation := s.ValidateBindingTx(ctx, tx, line)
		if !validation.Valid {
			result.AllValid = false
		}
		result.Results = append(result.Results, validation)
	}
	return result
}
