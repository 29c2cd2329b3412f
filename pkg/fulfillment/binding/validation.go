package binding

import (
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateBindVoucherToBottleRequest(req BindVoucherToBottleRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.LineID, validation.Required),
		validation.Field(&req.SerialNumber, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateUnbindLineRequest(req UnbindLineRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.LineID, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateRequestEligibleInventoryRequest(req RequestEligibleInventoryRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Requester, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
