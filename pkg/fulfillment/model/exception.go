package model

import "github.com/goccy/go-json"

type ExceptionType string
type ExceptionStatus string

const (
	ExceptionTypeVoucherIneligible  ExceptionType = "voucher_ineligible"
	ExceptionTypeWmsDiscrepancy     ExceptionType = "wms_discrepancy"
	ExceptionTypeEarlyBindingFailed ExceptionType = "early_binding_failed"
	ExceptionTypePartialShipment    ExceptionType = "partial_shipment"
	ExceptionTypeBindingInvalid     ExceptionType = "binding_invalid"

	ExceptionStatusActive   ExceptionStatus = "active"
	ExceptionStatusResolved ExceptionStatus = "resolved"
)

// ShippingOrderException records a constraint violation. Exceptions are never
// auto-resolved by this core; ResolutionPath is descriptive text offered to
// the operator, not an executable action.
type ShippingOrderException struct {
	ID              string          `json:"id"`
	ShippingOrderID string          `json:"shipping_order_id"`
	LineID          string          `json:"line_id,omitempty"`
	Type            ExceptionType   `json:"type"`
	Status          ExceptionStatus `json:"status"`
	Description     string          `json:"description"`
	ResolutionPath  string          `json:"resolution_path"`
	CreatedAt       int64           `json:"created_at"` // Unix Time (in second) when the exception was created.
	CreatedBy       string          `json:"created_by"`
	ResolvedAt      int64           `json:"resolved_at,omitempty"`
	ResolvedBy      string          `json:"resolved_by,omitempty"`
}

// AuditLogEntry is an append-only event record. The core only writes audit
// entries and never reads them back.
type AuditLogEntry struct {
	EntityID    string          `json:"entity_id"`
	EventType   string          `json:"event_type"`
	Description string          `json:"description"`
	OldValues   json.RawMessage `json:"old_values,omitempty"`
	NewValues   json.RawMessage `json:"new_values,omitempty"`
	Actor       string          `json:"actor"`
	CreatedAt   int64           `json:"created_at"` // Unix Time (in second) when the event happened.
}
