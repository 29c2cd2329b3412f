package shippingorder

import (
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateCreateShippingOrderRequest(req CreateShippingOrderRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.CustomerID, validation.Required),
		validation.Field(&req.VoucherIDs, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.PackagingPreference, validation.Required, validation.In(model.PackagingPreferenceStandard, model.PackagingPreferencePreserveCases)),
		validation.Field(&req.DestinationAddress, validation.Required),
		validation.Field(&req.Requester, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateTransitionRequest(req TransitionRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Target, validation.Required, validation.In(
			model.ShippingOrderStatusDraft,
			model.ShippingOrderStatusPlanned,
			model.ShippingOrderStatusPicking,
			model.ShippingOrderStatusOnHold,
			model.ShippingOrderStatusShipped,
			model.ShippingOrderStatusCompleted,
			model.ShippingOrderStatusCancelled,
		)),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateCancelRequest(req CancelRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.Reason, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateResolveExceptionRequest(req ResolveExceptionRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.ExceptionID, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateVoucherRequest(req VoucherRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.VoucherID, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
