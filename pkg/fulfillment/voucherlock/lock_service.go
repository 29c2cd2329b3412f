// Package voucherlock owns voucher entitlement locking. A voucher is locked
// for at most one active shipping order at any time; all lock and unlock
// operations are idempotent. Both the shipping order state machine and the WMS
// flows go through this service, it is the single implementation of
// "lock all vouchers for a shipping order".
package voucherlock

import (
	"context"
	"errors"
	"fmt"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/voucher"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// LockService locks and unlocks vouchers against a single owning shipping
// order. All mutating methods participate in the caller's transaction; the
// caller owns commit and rollback.
type LockService interface {
	LockForShippingOrder(ctx context.Context, tx storage.Tx, ts int64, voucherID string, so *model.ShippingOrder, actor string) error
	LockAllForShippingOrder(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, actor string) error
	Unlock(ctx context.Context, tx storage.Tx, ts int64, voucherID string, actor string) error
	UnlockAllForShippingOrder(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, actor string) UnlockAllResult

	IsLockedForOrder(ctx context.Context, tx storage.Tx, voucherID string, shippingOrderID string) (bool, error)
	IsVoucherInActiveShippingOrder(ctx context.Context, tx storage.Tx, voucherID string) (bool, error)
	FindShippingOrderForLockedVoucher(ctx context.Context, tx storage.Tx, voucherID string) (*model.ShippingOrder, error)
	ValidateCanLock(ctx context.Context, tx storage.Tx, voucherID string, shippingOrderID string) error
}

// UnlockAllResult reports per-voucher unlock outcomes. Unlock failures never
// abort the batch.
type UnlockAllResult struct {
	Unlocked []string          `json:"unlocked"`
	Failed   map[string]string `json:"failed,omitempty"` // voucher ID -> failure reason
}

type _LockService struct {
	voucherStorage storage.VoucherStorage
	orderStorage   storage.ShippingOrderStorage
	voucherSvc     voucher.Service
}

func NewLockService(voucherStorage storage.VoucherStorage, orderStorage storage.ShippingOrderStorage, voucherSvc voucher.Service) LockService {
	return &_LockService{
		voucherStorage: voucherStorage,
		orderStorage:   orderStorage,
		voucherSvc:     voucherSvc,
	}
}

func (s *_LockService) LockForShippingOrder(ctx context.Context, tx storage.Tx, ts int64, voucherID string, so *model.ShippingOrder, actor string) error {
	v, err := s.voucherStorage.GetVoucher(ctx, tx, voucherID)
	if err != nil {
		return err
	}

	if v.LifecycleState == model.VoucherLifecycleLocked {
		if v.LockedForOrderID == so.ID {
			// Already locked for this order. Success without side effects.
			return nil
		}
		holder, err := s.activeHolder(ctx, tx, v.LockedForOrderID)
		if err != nil {
			return err
		}
		if holder != nil {
			return fmt.Errorf("voucher %q is locked for shipping order %q%w", voucherID, holder.ID, model.ErrVoucherLockedElsewhere)
		}
		// The holding order is no longer active; the lock is stale and the
		// voucher may be re-locked.
	} else if v.LifecycleState != model.VoucherLifecycleIssued {
		return fmt.Errorf("voucher %q is in lifecycle state %q and cannot be locked%w", voucherID, v.LifecycleState, model.ErrVoucherNotLockable)
	}

	if err := s.voucherSvc.LockForFulfillment(ctx, ts, voucherID, so.ID, actor); err != nil {
		return fmt.Errorf("lock voucher %q for shipping order %q: %v%w", voucherID, so.ID, err, model.ErrVoucherNotLockable)
	}

	oldValues, _ := json.Marshal(map[string]any{"lifecycle_state": v.LifecycleState, "locked_for_order_id": v.LockedForOrderID})
	v.LifecycleState = model.VoucherLifecycleLocked
	v.LockedForOrderID = so.ID
	v.Version += 1
	if err := s.voucherStorage.StoreVoucher(ctx, tx, v); err != nil {
		return err
	}

	newValues, _ := json.Marshal(map[string]any{"lifecycle_state": v.LifecycleState, "locked_for_order_id": v.LockedForOrderID})
	return s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    voucherID,
		EventType:   "voucher.locked",
		Description: fmt.Sprintf("voucher locked for shipping order %s", so.ID),
		OldValues:   oldValues,
		NewValues:   newValues,
		Actor:       actor,
		CreatedAt:   ts,
	})
}

// LockAllForShippingOrder locks every voucher referenced by the order. The
// operation is all-or-nothing: on failure, vouchers locked by this call are
// unlocked best-effort before the error is returned. Vouchers that were
// already locked for this order before the call are left untouched.
func (s *_LockService) LockAllForShippingOrder(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, actor string) error {
	lockedNow := make([]string, 0, len(so.Lines))
	for i := range so.Lines {
		voucherID := so.Lines[i].VoucherID
		already, err := s.IsLockedForOrder(ctx, tx, voucherID, so.ID)
		if err == nil && already {
			continue
		}
		if err != nil {
			s.rollbackLocks(ctx, tx, ts, lockedNow, actor)
			return err
		}

		if err := s.LockForShippingOrder(ctx, tx, ts, voucherID, so, actor); err != nil {
			s.rollbackLocks(ctx, tx, ts, lockedNow, actor)
			return err
		}
		lockedNow = append(lockedNow, voucherID)
	}
	return nil
}

func (s *_LockService) rollbackLocks(ctx context.Context, tx storage.Tx, ts int64, voucherIDs []string, actor string) {
	for _, id := range voucherIDs {
		if err := s.Unlock(ctx, tx, ts, id, actor); err != nil {
			logrus.Warnf("failed to roll back lock on voucher %q: %v", id, err)
		}
	}
}

func (s *_LockService) Unlock(ctx context.Context, tx storage.Tx, ts int64, voucherID string, actor string) error {
	v, err := s.voucherStorage.GetVoucher(ctx, tx, voucherID)
	if err != nil {
		return err
	}
	if v.LifecycleState != model.VoucherLifecycleLocked {
		// Already unlocked. No-op.
		return nil
	}

	if err := s.voucherSvc.Unlock(ctx, ts, voucherID, actor); err != nil {
		return fmt.Errorf("unlock voucher %q: %w", voucherID, err)
	}

	previousHolder := v.LockedForOrderID
	v.LifecycleState = model.VoucherLifecycleIssued
	v.LockedForOrderID = ""
	v.Version += 1
	if err := s.voucherStorage.StoreVoucher(ctx, tx, v); err != nil {
		return err
	}

	return s.orderStorage.AddAuditLog(ctx, tx, model.AuditLogEntry{
		EntityID:    voucherID,
		EventType:   "voucher.unlocked",
		Description: fmt.Sprintf("voucher unlocked from shipping order %s", previousHolder),
		Actor:       actor,
		CreatedAt:   ts,
	})
}

// UnlockAllForShippingOrder unlocks every voucher on the order best-effort.
// Individual failures are logged and collected; the batch never aborts.
func (s *_LockService) UnlockAllForShippingOrder(ctx context.Context, tx storage.Tx, ts int64, so *model.ShippingOrder, actor string) UnlockAllResult {
	result := UnlockAllResult{}
	for i := range so.Lines {
		voucherID := so.Lines[i].VoucherID
		if err := s.Unlock(ctx, tx, ts, voucherID, actor); err != nil {
			logrus.Warnf("failed to unlock voucher %q of shipping order %q: %v", voucherID, so.ID, err)
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[voucherID] = err.Error()
			continue
		}
		result.Unlocked = append(result.Unlocked, voucherID)
	}
	return result
}

func (s *_LockService) IsLockedForOrder(ctx context.Context, tx storage.Tx, voucherID string, shippingOrderID string) (bool, error) {
	v, err := s.voucherStorage.GetVoucher(ctx, tx, voucherID)
	if err != nil {
		return false, err
	}
	return v.LifecycleState == model.VoucherLifecycleLocked && v.LockedForOrderID == shippingOrderID, nil
}

func (s *_LockService) IsVoucherInActiveShippingOrder(ctx context.Context, tx storage.Tx, voucherID string) (bool, error) {
	so, err := s.FindShippingOrderForLockedVoucher(ctx, tx, voucherID)
	if err != nil {
		return false, err
	}
	return so != nil, nil
}

// FindShippingOrderForLockedVoucher returns the active shipping order holding
// the voucher, either through a lock or through a line assignment. Returns nil
// when no active order references the voucher.
func (s *_LockService) FindShippingOrderForLockedVoucher(ctx context.Context, tx storage.Tx, voucherID string) (*model.ShippingOrder, error) {
	result, err := s.orderStorage.ListShippingOrders(ctx, tx, storage.ListShippingOrdersRequest{
		Limit:      1,
		VoucherIDs: []string{voucherID},
		Statuses: []model.ShippingOrderStatus{
			model.ShippingOrderStatusDraft,
			model.ShippingOrderStatusPlanned,
			model.ShippingOrderStatusPicking,
			model.ShippingOrderStatusOnHold,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(result.Orders) == 0 {
		return nil, nil
	}
	return &result.Orders[0], nil
}

// ValidateCanLock is the read-only pre-flight for LockForShippingOrder.
func (s *_LockService) ValidateCanLock(ctx context.Context, tx storage.Tx, voucherID string, shippingOrderID string) error {
	v, err := s.voucherStorage.GetVoucher(ctx, tx, voucherID)
	if err != nil {
		return err
	}

	switch v.LifecycleState {
	case model.VoucherLifecycleIssued:
		return nil
	case model.VoucherLifecycleLocked:
		if v.LockedForOrderID == shippingOrderID {
			return nil
		}
		holder, err := s.activeHolder(ctx, tx, v.LockedForOrderID)
		if err != nil {
			return err
		}
		if holder != nil {
			return fmt.Errorf("voucher %q is locked for shipping order %q%w", voucherID, holder.ID, model.ErrVoucherLockedElsewhere)
		}
		return nil
	default:
		return fmt.Errorf("voucher %q is in lifecycle state %q and cannot be locked%w", voucherID, v.LifecycleState, model.ErrVoucherNotLockable)
	}
}

// activeHolder resolves the order holding a lock and returns it only when it
// is still active. A missing or inactive holder means the lock is stale.
func (s *_LockService) activeHolder(ctx context.Context, tx storage.Tx, shippingOrderID string) (*model.ShippingOrder, error) {
	if shippingOrderID == "" {
		return nil, nil
	}
	holder, err := s.orderStorage.GetShippingOrder(ctx, tx, shippingOrderID)
	if errors.Is(err, model.ErrShippingOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !holder.Status.IsActive() {
		return nil, nil
	}
	return &holder, nil
}
