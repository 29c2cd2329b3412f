// Package provenance publishes bottle ownership-transfer events to the
// external provenance ledger. Events are written to a transactional outbox by
// the shipment confirmation flow and delivered asynchronously by the
// processor; delivery is fire-and-forget and not required for core
// correctness.
package provenance

import (
	"context"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/goccy/go-json"
)

type OwnershipTransferredEvent struct {
	SerialNumber    string `json:"serial_number"`
	AllocationID    string `json:"allocation_id"`
	ShippingOrderID string `json:"shipping_order_id"`
	ShipmentID      string `json:"shipment_id"`
	CustomerID      string `json:"customer_id"`
	TransferredAt   int64  `json:"transferred_at"` // Unix Time (in second).
}

// Publisher stages provenance events inside the caller's transaction.
type Publisher interface {
	PublishOwnershipTransferred(ctx context.Context, tx storage.Tx, ts int64, event OwnershipTransferredEvent) error
}

type _Publisher struct {
	storage storage.ShipmentStorage
}

func NewPublisher(shipmentStorage storage.ShipmentStorage) Publisher {
	return &_Publisher{
		storage: shipmentStorage,
	}
}

func (p *_Publisher) PublishOwnershipTransferred(ctx context.Context, tx storage.Tx, ts int64, event OwnershipTransferredEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.storage.AddProvenanceOutbox(ctx, tx, ts, event.SerialNumber, payload)
}
