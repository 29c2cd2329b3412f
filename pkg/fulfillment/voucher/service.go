// Package voucher declares the contract of the external voucher service this
// core collaborates with. The voucher domain model lives in that system; only
// the fulfillment-facing operations are visible here.
package voucher

import "context"

// Service is the external voucher collaborator.
type Service interface {
	// Redeem permanently redeems the voucher. Redemption is irreversible and
	// happens exactly once, at shipment confirmation.
	Redeem(ctx context.Context, ts int64, voucherID string, actor string) error

	// LockForFulfillment locks the voucher entitlement for the given shipping
	// order.
	LockForFulfillment(ctx context.Context, ts int64, voucherID string, shippingOrderID string, actor string) error

	// Unlock releases a fulfillment lock. Unlocking an unlocked voucher is a
	// no-op.
	Unlock(ctx context.Context, ts int64, voucherID string, actor string) error

	// CheckFulfillmentEligibility asks the voucher system whether the voucher
	// may currently be fulfilled at all.
	CheckFulfillmentEligibility(ctx context.Context, voucherID string) error
}
