package shippingorder

import (
	"context"
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
)

// checkVoucherEligibilityTx is the single eligibility predicate, evaluated
// identically at creation, planning and pre-picking. It returns the first
// failing reason only.
func (s *_Service) checkVoucherEligibilityTx(ctx context.Context, tx storage.Tx, v model.Voucher, so *model.ShippingOrder) EligibilityResult {
	ineligible := func(reason string) EligibilityResult {
		return EligibilityResult{VoucherID: v.ID, Eligible: false, Reason: reason}
	}

	switch v.LifecycleState {
	case model.VoucherLifecycleIssued:
		// ok
	case model.VoucherLifecycleLocked:
		if so == nil || v.LockedForOrderID != so.ID {
			return ineligible(fmt.Sprintf("voucher is locked for shipping order %s", v.LockedForOrderID))
		}
	default:
		return ineligible(fmt.Sprintf("voucher lifecycle state is %s", v.LifecycleState))
	}

	if v.Suspended {
		return ineligible("voucher is suspended")
	}
	if v.PendingTransfer {
		return ineligible("voucher has a pending ownership transfer")
	}
	if v.Quarantined {
		return ineligible("voucher is quarantined")
	}
	if v.LineageCompromised {
		return ineligible("voucher allocation lineage is compromised")
	}
	if v.AllocationClosed {
		return ineligible("voucher allocation is closed")
	}

	holder, err := s.lockSvc.FindShippingOrderForLockedVoucher(ctx, tx, v.ID)
	if err != nil {
		return ineligible(fmt.Sprintf("could not verify active shipping order assignment: %v", err))
	}
	if holder != nil && (so == nil || holder.ID != so.ID) {
		return ineligible(fmt.Sprintf("voucher is already assigned to active shipping order %s", holder.ID))
	}

	if so != nil && v.CustomerID != so.CustomerID {
		return ineligible(fmt.Sprintf("voucher belongs to customer %s, not %s", v.CustomerID, so.CustomerID))
	}

	return EligibilityResult{VoucherID: v.ID, Eligible: true}
}

// ineligibleVouchersTx re-validates every voucher on the order and returns
// the ineligible ones.
func (s *_Service) ineligibleVouchersTx(ctx context.Context, tx storage.Tx, so *model.ShippingOrder) ([]EligibilityResult, error) {
	var ineligible []EligibilityResult
	for i := range so.Lines {
		v, err := s.voucherStorage.GetVoucher(ctx, tx, so.Lines[i].VoucherID)
		if err != nil {
			return nil, err
		}
		if result := s.checkVoucherEligibilityTx(ctx, tx, v, so); !result.Eligible {
			ineligible = append(ineligible, result)
		}
	}
	return ineligible, nil
}

func (s *_Service) GetVoucherEligibilitySummary(ctx context.Context, orderID string) (EligibilitySummary, error) {
	tx, ctx, err := s.orderStorage.CreateTx(ctx)
	if err != nil {
		return EligibilitySummary{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	so, err := s.orderStorage.GetShippingOrder(ctx, tx, orderID)
	if err != nil {
		return EligibilitySummary{}, err
	}

	summary := EligibilitySummary{OrderID: so.ID}
	for i := range so.Lines {
		v, err := s.voucherStorage.GetVoucher(ctx, tx, so.Lines[i].VoucherID)
		if err != nil {
			return EligibilitySummary{}, err
		}
		result := s.checkVoucherEligibilityTx(ctx, tx, v, &so)
		if !result.Eligible {
			summary.Blocked = true
		}
		summary.Vouchers = append(summary.Vouchers, result)
	}
	return summary, nil
}

func (s *_Service) CheckIfBlocked(ctx context.Context, orderID string) (bool, error) {
	summary, err := s.GetVoucherEligibilitySummary(ctx, orderID)
	if err != nil {
		return false, err
	}
	return summary.Blocked, nil
}

func (s *_Service) CanProceed(ctx context.Context, orderID string) (bool, error) {
	blocked, err := s.CheckIfBlocked(ctx, orderID)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}
