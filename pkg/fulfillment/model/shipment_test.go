package model_test

import (
	"testing"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/stretchr/testify/assert"
)

func TestShipmentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    model.ShipmentStatus
		to      model.ShipmentStatus
		allowed bool
	}{
		{model.ShipmentStatusPreparing, model.ShipmentStatusShipped, true},
		{model.ShipmentStatusPreparing, model.ShipmentStatusFailed, true},
		{model.ShipmentStatusPreparing, model.ShipmentStatusDelivered, false},
		{model.ShipmentStatusShipped, model.ShipmentStatusDelivered, true},
		{model.ShipmentStatusShipped, model.ShipmentStatusFailed, true},
		{model.ShipmentStatusShipped, model.ShipmentStatusPreparing, false},
		{model.ShipmentStatusDelivered, model.ShipmentStatusFailed, false},
		{model.ShipmentStatusFailed, model.ShipmentStatusShipped, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBottleStateTerminal(t *testing.T) {
	assert.True(t, model.BottleStateShipped.IsTerminal())
	assert.True(t, model.BottleStateDestroyed.IsTerminal())
	assert.True(t, model.BottleStateMissing.IsTerminal())
	assert.False(t, model.BottleStateStored.IsTerminal())
	assert.False(t, model.BottleStateReservedForPicking.IsTerminal())
}
