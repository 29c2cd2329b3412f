package postgres

import (
	"context"
	"errors"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) StoreShippingOrder(ctx context.Context, tx storage.Tx, so model.ShippingOrder) error {
	query := `
WITH new_data AS (
	INSERT INTO shipping_order (id, "version", customer_id, warehouse_id, "status", shipping_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		customer_id = excluded.customer_id,
		warehouse_id = excluded.warehouse_id,
		"status" = excluded."status",
		shipping_order = excluded.shipping_order,
		updated_at = excluded.updated_at
	RETURNING id, "version", shipping_order, updated_at
)
INSERT INTO shipping_order_history (id, "version", shipping_order, created_at)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		so.ID,
		so.Version,
		so.CustomerID,
		so.WarehouseID,
		so.Status,
		so,
		so.CreatedAt,
		so.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return s.syncShippingOrderLines(ctx, tx, so)
}

// syncShippingOrderLines rewrites the line lookup table for the order. The
// JSONB document is the source of truth; the table exists for voucher filters
// and the active-binding lookup.
func (s *_Storage) syncShippingOrderLines(ctx context.Context, tx storage.Tx, so model.ShippingOrder) error {
	if _, err := tx.Exec(ctx, `DELETE FROM shipping_order_line WHERE shipping_order_id = $1`, so.ID); err != nil {
		return err
	}

	query := `
INSERT INTO shipping_order_line (id, shipping_order_id, voucher_id, allocation_id, "status", early_binding_serial, bound_bottle_serial)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	for i := range so.Lines {
		line := &so.Lines[i]
		_, err := tx.Exec(
			ctx,
			query,
			line.ID,
			line.ShippingOrderID,
			line.VoucherID,
			line.AllocationID,
			line.Status,
			line.EarlyBindingSerial,
			line.BoundBottleSerial,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetShippingOrder(ctx context.Context, tx storage.Tx, id string) (model.ShippingOrder, error) {
	query := `SELECT shipping_order FROM shipping_order WHERE id = $1`
	if isWriteTx(tx) {
		query += ` FOR UPDATE`
	}

	var so model.ShippingOrder
	err := tx.QueryRow(ctx, query, id).Scan(&so)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ShippingOrder{}, model.ErrShippingOrderNotFound
	}
	if err != nil {
		return model.ShippingOrder{}, err
	}
	return so, nil
}

func (s *_Storage) ListShippingOrders(ctx context.Context, tx storage.Tx, req storage.ListShippingOrdersRequest) (storage.ListShippingOrdersResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		shipping_order
	FROM shipping_order so
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR customer_id = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR "status" = ANY($5)) AND
		(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR EXISTS (
			SELECT 1 FROM shipping_order_line l WHERE l.shipping_order_id = so.id AND l.voucher_id = ANY($6)
		))
)
SELECT
	total,
	shipping_order
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT shipping_order FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs, req.CustomerIDs, req.Statuses, req.VoucherIDs)
	if err != nil {
		return storage.ListShippingOrdersResult{}, err
	}
	defer rows.Close()

	var res storage.ListShippingOrdersResult
	for rows.Next() {
		var total *int
		var so *model.ShippingOrder

		if err := rows.Scan(&total, &so); err != nil {
			return storage.ListShippingOrdersResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if so != nil {
			res.Orders = append(res.Orders, *so)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListShippingOrdersResult{}, err
	}

	return res, nil
}

func (s *_Storage) AddException(ctx context.Context, tx storage.Tx, exception model.ShippingOrderException) error {
	query := `
INSERT INTO shipping_order_exception (id, shipping_order_id, line_id, "type", "status", exception, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	"status" = excluded."status",
	exception = excluded.exception
`
	_, err := tx.Exec(
		ctx,
		query,
		exception.ID,
		exception.ShippingOrderID,
		exception.LineID,
		exception.Type,
		exception.Status,
		exception,
		exception.CreatedAt,
	)
	return err
}

func (s *_Storage) GetException(ctx context.Context, tx storage.Tx, id string) (model.ShippingOrderException, error) {
	query := `SELECT exception FROM shipping_order_exception WHERE id = $1`

	var exception model.ShippingOrderException
	err := tx.QueryRow(ctx, query, id).Scan(&exception)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ShippingOrderException{}, model.ErrExceptionNotFound
	}
	if err != nil {
		return model.ShippingOrderException{}, err
	}
	return exception, nil
}

func (s *_Storage) ResolveException(ctx context.Context, tx storage.Tx, id string, ts int64, resolvedBy string) error {
	query := `
UPDATE shipping_order_exception
SET
	"status" = 'resolved',
	exception = exception || jsonb_build_object('status', 'resolved', 'resolved_at', $2::BIGINT, 'resolved_by', $3::TEXT)
WHERE id = $1
`
	result, err := tx.Exec(ctx, query, id, ts, resolvedBy)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrExceptionNotFound
	}
	return nil
}

func (s *_Storage) ListExceptions(ctx context.Context, tx storage.Tx, req storage.ListExceptionsRequest) (storage.ListExceptionsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		exception
	FROM shipping_order_exception
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR shipping_order_id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR "type" = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR "status" = ANY($5))
)
SELECT
	total,
	exception
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT exception FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.ShippingOrderIDs, req.Types, req.Statuses)
	if err != nil {
		return storage.ListExceptionsResult{}, err
	}
	defer rows.Close()

	var res storage.ListExceptionsResult
	for rows.Next() {
		var total *int
		var exception *model.ShippingOrderException

		if err := rows.Scan(&total, &exception); err != nil {
			return storage.ListExceptionsResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if exception != nil {
			res.Exceptions = append(res.Exceptions, *exception)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListExceptionsResult{}, err
	}

	return res, nil
}

func (s *_Storage) AddAuditLog(ctx context.Context, tx storage.Tx, entry model.AuditLogEntry) error {
	query := `
INSERT INTO shipping_order_audit_log (entity_id, event_type, description, old_values, new_values, actor, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := tx.Exec(
		ctx,
		query,
		entry.EntityID,
		entry.EventType,
		entry.Description,
		entry.OldValues,
		entry.NewValues,
		entry.Actor,
		entry.CreatedAt,
	)
	return err
}
