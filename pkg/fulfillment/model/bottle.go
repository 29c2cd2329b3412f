package model

type BottleState string
type CaseIntegrityStatus string

const (
	BottleStateStored             BottleState = "stored"
	BottleStateReservedForPicking BottleState = "reserved_for_picking"
	BottleStateShipped            BottleState = "shipped"
	BottleStateDestroyed          BottleState = "destroyed"
	BottleStateMissing            BottleState = "missing"

	CaseIntegrityIntact CaseIntegrityStatus = "intact"
	CaseIntegrityBroken CaseIntegrityStatus = "broken"
)

func (s BottleState) IsTerminal() bool {
	switch s {
	case BottleStateShipped, BottleStateDestroyed, BottleStateMissing:
		return true
	}
	return false
}

// SerializedBottle is a single physical inventory unit identified by its
// serial number. AllocationID is immutable lineage; the state only changes
// through defined transitions (bind reserves, unbind restores, ship finalizes).
type SerializedBottle struct {
	SerialNumber      string      `json:"serial_number"` // Identity of the bottle.
	Version           int64       `json:"version"`
	AllocationID      string      `json:"allocation_id"` // Immutable allocation lineage.
	WineVariantID     string      `json:"wine_variant_id"`
	FormatID          string      `json:"format_id"`
	State             BottleState `json:"state"`
	CaseID            string      `json:"case_id,omitempty"` // Case the bottle belongs to, if any.
	CurrentLocationID string      `json:"current_location_id"`
}

// InventoryCase is read-only in this core. It is only consulted to decide
// whether a "preserve cases" packaging preference is feasible.
type InventoryCase struct {
	CaseID            string              `json:"case_id"`
	AllocationID      string              `json:"allocation_id"`
	IntegrityStatus   CaseIntegrityStatus `json:"integrity_status"`
	CurrentLocationID string              `json:"current_location_id"`
	BottleCount       int                 `json:"bottle_count"`
}
