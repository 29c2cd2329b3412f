package model

import "github.com/shopspring/decimal"

type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "preparing"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusFailed    ShipmentStatus = "failed"
)

var shipmentTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentStatusPreparing: {ShipmentStatusShipped, ShipmentStatusFailed},
	ShipmentStatusShipped:   {ShipmentStatusDelivered, ShipmentStatusFailed},
}

func (s ShipmentStatus) CanTransitionTo(target ShipmentStatus) bool {
	for _, t := range shipmentTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Shipment is created from a fully bound, fully validated shipping order.
// ShippedBottleSerials never changes once the shipment reaches shipped status.
type Shipment struct {
	ID              string         `json:"id"`
	Version         int64          `json:"version"`
	ShippingOrderID string         `json:"shipping_order_id"`
	Status          ShipmentStatus `json:"status"`

	Carrier              string   `json:"carrier"`
	TrackingNumber       string   `json:"tracking_number,omitempty"`
	DestinationAddress   string   `json:"destination_address"`
	ShippedBottleSerials []string `json:"shipped_bottle_serials"`

	DeclaredValue      decimal.Decimal `json:"declared_value"` // Customs declared value of the shipment.
	CaseBreakConfirmed bool            `json:"case_break_confirmed"`
	Notes              []string        `json:"notes,omitempty"`

	CreatedAt   int64  `json:"created_at"` // Unix Time (in second) when the shipment was created.
	CreatedBy   string `json:"created_by"`
	ShippedAt   int64  `json:"shipped_at,omitempty"`
	DeliveredAt int64  `json:"delivered_at,omitempty"`
	FailedAt    int64  `json:"failed_at,omitempty"`
}
