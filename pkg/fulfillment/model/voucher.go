package model

type VoucherLifecycleState string

const (
	VoucherLifecycleIssued   VoucherLifecycleState = "issued"
	VoucherLifecycleLocked   VoucherLifecycleState = "locked"
	VoucherLifecycleRedeemed VoucherLifecycleState = "redeemed"
	VoucherLifecycleVoid     VoucherLifecycleState = "void"
)

// Voucher is the local read model of an entitlement voucher. The voucher
// domain lives in an external voucher service; this core only consumes the
// eligibility signals it exposes and records which shipping order currently
// holds the fulfillment lock.
type Voucher struct {
	ID           string `json:"id"`
	Version      int64  `json:"version"`
	CustomerID   string `json:"customer_id"`
	AllocationID string `json:"allocation_id"`

	LifecycleState VoucherLifecycleState `json:"lifecycle_state"`

	// LockedForOrderID is the shipping order holding the fulfillment lock.
	// Empty unless LifecycleState is locked.
	LockedForOrderID string `json:"locked_for_order_id,omitempty"`

	// EarlyBindingSerial carries upstream personalization: a specific bottle
	// already committed to this voucher before fulfillment starts.
	EarlyBindingSerial string `json:"early_binding_serial,omitempty"`

	Suspended          bool `json:"suspended"`
	PendingTransfer    bool `json:"pending_transfer"`
	Quarantined        bool `json:"quarantined"`
	LineageCompromised bool `json:"lineage_compromised"`
	AllocationClosed   bool `json:"allocation_closed"`
}
