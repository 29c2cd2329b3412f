package wms

import (
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateSendPickingInstructionsRequest(req SendPickingInstructionsRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Requester, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateReceivePickingFeedbackRequest(req ReceivePickingFeedbackRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.PickedLines, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	for _, picked := range req.PickedLines {
		if picked.LineID == "" || picked.SerialNumber == "" {
			return fmt.Errorf("every picked line needs a line_id and a serial_number%w", model.ErrInvalidParameter)
		}
	}
	return nil
}

func ValidateValidateSerialsRequest(req ValidateSerialsRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Serials, validation.Required, validation.Length(1, 0)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateWmsConfirmShipmentRequest(req WmsConfirmShipmentRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.TrackingNumber, validation.Required),
		validation.Field(&req.ShippedSerials, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateHandleDiscrepancyRequest(req HandleDiscrepancyRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Details, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateRequestRePickRequest(req RequestRePickRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.LineID, validation.Required),
		validation.Field(&req.Reason, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
