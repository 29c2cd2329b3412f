package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("")   // Base error for invalid parameter
var ErrShippingOrderError = errors.New("") // Base error for Shipping Order
var ErrBindingError = errors.New("")       // Base error for bottle binding
var ErrVoucherLockError = errors.New("")   // Base error for voucher locking
var ErrShipmentError = errors.New("")      // Base error for Shipment
var ErrWmsError = errors.New("")           // Base error for WMS reconciliation

// Shipping Order errors
var ErrShippingOrderNotFound = fmt.Errorf("shipping order not found%w", ErrShippingOrderError)
var ErrInvalidTransition = fmt.Errorf("status transition not allowed%w", ErrShippingOrderError)
var ErrOrderNotEditable = fmt.Errorf("shipping order is not editable%w", ErrShippingOrderError)
var ErrOrderNotCancellable = fmt.Errorf("shipping order cannot be cancelled%w", ErrShippingOrderError)
var ErrVoucherIneligible = fmt.Errorf("voucher is not eligible for fulfillment%w", ErrShippingOrderError)
var ErrDuplicateVoucher = fmt.Errorf("voucher is already on the shipping order%w", ErrShippingOrderError)
var ErrVoucherNotFound = fmt.Errorf("voucher not found%w", ErrShippingOrderError)
var ErrLineNotFound = fmt.Errorf("shipping order line not found%w", ErrShippingOrderError)
var ErrExceptionNotFound = fmt.Errorf("shipping order exception not found%w", ErrShippingOrderError)

// Binding errors
var ErrBottleNotFound = fmt.Errorf("bottle not found%w", ErrBindingError)
var ErrAllocationMismatch = fmt.Errorf("bottle allocation does not match line allocation%w", ErrBindingError)
var ErrBottleNotAvailable = fmt.Errorf("bottle is not available for binding%w", ErrBindingError)
var ErrBottleAlreadyBound = fmt.Errorf("bottle is already bound to another shipping order%w", ErrBindingError)
var ErrLineNotBindable = fmt.Errorf("line status does not allow binding%w", ErrBindingError)
var ErrLineAlreadyBound = fmt.Errorf("line is already bound%w", ErrBindingError)
var ErrLineNotBound = fmt.Errorf("line is not bound%w", ErrBindingError)
var ErrLineShipped = fmt.Errorf("line is already shipped%w", ErrBindingError)

// Voucher lock errors
var ErrVoucherLockedElsewhere = fmt.Errorf("voucher is locked for another active shipping order%w", ErrVoucherLockError)
var ErrVoucherNotLockable = fmt.Errorf("voucher cannot be locked%w", ErrVoucherLockError)

// Shipment errors
var ErrShipmentNotFound = fmt.Errorf("shipment not found%w", ErrShipmentError)
var ErrShipmentNotPreparing = fmt.Errorf("shipment is not in preparing status%w", ErrShipmentError)
var ErrShipmentTransition = fmt.Errorf("shipment status transition not allowed%w", ErrShipmentError)
var ErrLinesNotBound = fmt.Errorf("not all lines are bound%w", ErrShipmentError)
var ErrBindingInvalid = fmt.Errorf("line binding is no longer valid%w", ErrShipmentError)
var ErrRedemptionFailed = fmt.Errorf("voucher redemption failed%w", ErrShipmentError)

// WMS reconciliation errors
var ErrPartialShipment = fmt.Errorf("partial shipment is not supported%w", ErrWmsError)
var ErrWmsStatusNotAllowed = fmt.Errorf("shipping order status does not allow WMS operation%w", ErrWmsError)
