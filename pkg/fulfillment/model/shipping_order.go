// Package model contains the domain model of the fulfillment core.
package model

type ShippingOrderStatus string
type LineStatus string
type PackagingPreference string

const (
	ShippingOrderStatusDraft     ShippingOrderStatus = "draft"
	ShippingOrderStatusPlanned   ShippingOrderStatus = "planned"
	ShippingOrderStatusPicking   ShippingOrderStatus = "picking"
	ShippingOrderStatusOnHold    ShippingOrderStatus = "on_hold"
	ShippingOrderStatusShipped   ShippingOrderStatus = "shipped"
	ShippingOrderStatusCompleted ShippingOrderStatus = "completed"
	ShippingOrderStatusCancelled ShippingOrderStatus = "cancelled"

	LineStatusPending   LineStatus = "pending"
	LineStatusValidated LineStatus = "validated"
	LineStatusPicked    LineStatus = "picked"
	LineStatusShipped   LineStatus = "shipped"
	LineStatusCancelled LineStatus = "cancelled"

	PackagingPreferenceStandard      PackagingPreference = "standard"
	PackagingPreferencePreserveCases PackagingPreference = "preserve_cases"
)

// shippingOrderTransitions is the closed transition table of the Shipping Order
// state machine. Completed and Cancelled are terminal.
var shippingOrderTransitions = map[ShippingOrderStatus][]ShippingOrderStatus{
	ShippingOrderStatusDraft:   {ShippingOrderStatusPlanned, ShippingOrderStatusOnHold, ShippingOrderStatusCancelled},
	ShippingOrderStatusPlanned: {ShippingOrderStatusPicking, ShippingOrderStatusOnHold, ShippingOrderStatusCancelled},
	ShippingOrderStatusPicking: {ShippingOrderStatusShipped, ShippingOrderStatusOnHold, ShippingOrderStatusCancelled},
	ShippingOrderStatusOnHold:  {ShippingOrderStatusDraft, ShippingOrderStatusPlanned, ShippingOrderStatusPicking, ShippingOrderStatusCancelled},
	ShippingOrderStatusShipped: {ShippingOrderStatusCompleted},
}

func (s ShippingOrderStatus) CanTransitionTo(target ShippingOrderStatus) bool {
	for _, t := range shippingOrderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the shipping order can still own voucher locks and
// bottle bindings. Shipped, Completed and Cancelled orders are not active.
func (s ShippingOrderStatus) IsActive() bool {
	switch s {
	case ShippingOrderStatusDraft, ShippingOrderStatusPlanned, ShippingOrderStatusPicking, ShippingOrderStatusOnHold:
		return true
	}
	return false
}

// RequiresVoucherLock reports whether vouchers must be locked while the order
// is in this status. OnHold keeps whatever lock state existed before the hold;
// unlock is idempotent so cancellation can always attempt it.
func (s ShippingOrderStatus) RequiresVoucherLock() bool {
	return s == ShippingOrderStatusPlanned || s == ShippingOrderStatusPicking
}

func (s ShippingOrderStatus) CanBeEdited() bool {
	return s == ShippingOrderStatusDraft
}

func (s ShippingOrderStatus) CanBeCancelled() bool {
	return s.CanTransitionTo(ShippingOrderStatusCancelled)
}

func (s ShippingOrderStatus) IsTerminal() bool {
	return s == ShippingOrderStatusCompleted || s == ShippingOrderStatusCancelled
}

// AllowsBinding reports whether a line in this status may receive a late
// binding. Only validated lines are bindable.
func (s LineStatus) AllowsBinding() bool {
	return s == LineStatusValidated
}

func (s LineStatus) IsTerminal() bool {
	return s == LineStatusShipped || s == LineStatusCancelled
}

type ShippingOrder struct {
	ID                  string              `json:"id"`                   // Unique ID of the Shipping Order.
	Version             int64               `json:"version"`              // Version of the Shipping Order.
	CustomerID          string              `json:"customer_id"`          // Customer the order ships to.
	WarehouseID         string              `json:"warehouse_id"`         // Source warehouse. Empty means any warehouse.
	Carrier             string              `json:"carrier"`              // Carrier preference.
	PackagingPreference PackagingPreference `json:"packaging_preference"` // standard or preserve_cases.
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	RequestedShipDate   string              `json:"requested_ship_date,omitempty"` // ISO 8601 date.
	DestinationAddress  string              `json:"destination_address"`

	Status ShippingOrderStatus `json:"status"`
	Lines  []ShippingOrderLine `json:"lines"` // Ordered collection of lines.

	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the order was created.
	CreatedBy string `json:"created_by"` // Actor who created the order.
	UpdatedAt int64  `json:"updated_at"` // Unix Time (in second) when the order was last updated.
	UpdatedBy string `json:"updated_by"` // Actor who last updated the order.
}

type ShippingOrderLine struct {
	ID              string `json:"id"`                // Unique ID of the line.
	ShippingOrderID string `json:"shipping_order_id"` // The order this line belongs to.
	VoucherID       string `json:"voucher_id"`        // The entitlement voucher this line fulfills.

	// AllocationID is copied from the voucher at line creation and never
	// re-derived afterwards. It freezes the allocation lineage the bound
	// bottle must match.
	AllocationID string `json:"allocation_id"`

	WineVariantID string `json:"wine_variant_id"`
	FormatID      string `json:"format_id"`

	Status LineStatus `json:"status"`

	// Exactly one of {unbound, early-bound, late-bound} applies at any time.
	// EarlyBindingSerial is set at creation from upstream personalization and
	// is immutable; it always takes precedence over late binding.
	EarlyBindingSerial string `json:"early_binding_serial,omitempty"`
	BoundBottleSerial  string `json:"bound_bottle_serial,omitempty"`
	BoundCaseID        string `json:"bound_case_id,omitempty"`
	BindingConfirmedAt int64  `json:"binding_confirmed_at,omitempty"`
	BindingConfirmedBy string `json:"binding_confirmed_by,omitempty"`
}

// IsBound reports whether the line is bound through either mechanism.
func (l *ShippingOrderLine) IsBound() bool {
	return l.EarlyBindingSerial != "" || l.BoundBottleSerial != ""
}

// EffectiveSerial returns the serial that ships for this line. Early binding
// wins when both are present.
func (l *ShippingOrderLine) EffectiveSerial() string {
	if l.EarlyBindingSerial != "" {
		return l.EarlyBindingSerial
	}
	return l.BoundBottleSerial
}

// Line returns the line with the given ID, or nil.
func (so *ShippingOrder) Line(lineID string) *ShippingOrderLine {
	for i := range so.Lines {
		if so.Lines[i].ID == lineID {
			return &so.Lines[i]
		}
	}
	return nil
}

// LineByVoucher returns the line referencing the given voucher, or nil.
func (so *ShippingOrder) LineByVoucher(voucherID string) *ShippingOrderLine {
	for i := range so.Lines {
		if so.Lines[i].VoucherID == voucherID {
			return &so.Lines[i]
		}
	}
	return nil
}

// VoucherIDs returns the voucher IDs of all lines in order.
func (so *ShippingOrder) VoucherIDs() []string {
	ids := make([]string, 0, len(so.Lines))
	for i := range so.Lines {
		ids = append(ids, so.Lines[i].VoucherID)
	}
	return ids
}
