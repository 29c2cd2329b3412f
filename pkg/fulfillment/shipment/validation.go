package shipment

import (
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateCreateFromOrderRequest(req CreateFromOrderRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Requester, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateConfirmShipmentRequest(req ConfirmShipmentRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.TrackingNumber, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateMarkDeliveredRequest(req MarkDeliveredRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateMarkFailedRequest(req MarkFailedRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.Reason, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
