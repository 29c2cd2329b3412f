package postgres

import (
	"context"
	"errors"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) GetBottle(ctx context.Context, tx storage.Tx, serialNumber string) (model.SerializedBottle, error) {
	query := `SELECT bottle FROM bottle WHERE serial_number = $1`
	if isWriteTx(tx) {
		query += ` FOR UPDATE`
	}

	var bottle model.SerializedBottle
	err := tx.QueryRow(ctx, query, serialNumber).Scan(&bottle)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.SerializedBottle{}, model.ErrBottleNotFound
	}
	if err != nil {
		return model.SerializedBottle{}, err
	}
	return bottle, nil
}

func (s *_Storage) StoreBottle(ctx context.Context, tx storage.Tx, bottle model.SerializedBottle) error {
	query := `
INSERT INTO bottle (serial_number, "version", allocation_id, "state", case_id, current_location_id, bottle)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (serial_number) DO UPDATE SET
	"version" = excluded."version",
	allocation_id = excluded.allocation_id,
	"state" = excluded."state",
	case_id = excluded.case_id,
	current_location_id = excluded.current_location_id,
	bottle = excluded.bottle
`
	_, err := tx.Exec(
		ctx,
		query,
		bottle.SerialNumber,
		bottle.Version,
		bottle.AllocationID,
		bottle.State,
		bottle.CaseID,
		bottle.CurrentLocationID,
		bottle,
	)
	return err
}

func (s *_Storage) ListBottles(ctx context.Context, tx storage.Tx, req storage.ListBottlesRequest) (storage.ListBottlesResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		serial_number,
		bottle
	FROM bottle
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR serial_number = ANY($3)) AND
		($4 = '' OR allocation_id = $4) AND
		($5 = '' OR current_location_id = $5) AND
		(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR "state" = ANY($6))
)
SELECT
	total,
	bottle
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT bottle FROM filtered_record ORDER BY serial_number ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	limit := req.Limit
	if limit == 0 {
		limit = 1000
	}
	rows, err := tx.Query(ctx, query, req.Offset, limit, req.SerialNumbers, req.AllocationID, req.WarehouseID, req.States)
	if err != nil {
		return storage.ListBottlesResult{}, err
	}
	defer rows.Close()

	var res storage.ListBottlesResult
	for rows.Next() {
		var total *int
		var bottle *model.SerializedBottle

		if err := rows.Scan(&total, &bottle); err != nil {
			return storage.ListBottlesResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if bottle != nil {
			res.Bottles = append(res.Bottles, *bottle)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListBottlesResult{}, err
	}

	return res, nil
}

func (s *_Storage) ListCases(ctx context.Context, tx storage.Tx, req storage.ListCasesRequest) (storage.ListCasesResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		case_id,
		inventory_case
	FROM inventory_case
	WHERE
		($1 = '' OR allocation_id = $1) AND
		($2 = '' OR current_location_id = $2) AND
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR integrity_status = ANY($3))
)
SELECT
	total,
	inventory_case
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT inventory_case FROM filtered_record ORDER BY case_id ASC) AS record ON FALSE
`
	rows, err := tx.Query(ctx, query, req.AllocationID, req.WarehouseID, req.IntegrityStatuses)
	if err != nil {
		return storage.ListCasesResult{}, err
	}
	defer rows.Close()

	var res storage.ListCasesResult
	for rows.Next() {
		var total *int
		var inventoryCase *model.InventoryCase

		if err := rows.Scan(&total, &inventoryCase); err != nil {
			return storage.ListCasesResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if inventoryCase != nil {
			res.Cases = append(res.Cases, *inventoryCase)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListCasesResult{}, err
	}

	return res, nil
}

func (s *_Storage) GetActiveBindingForBottle(ctx context.Context, tx storage.Tx, serialNumber string) (*storage.ActiveBinding, error) {
	query := `
SELECT l.shipping_order_id, l.id, so."status"
FROM shipping_order_line l
JOIN shipping_order so ON so.id = l.shipping_order_id
WHERE
	(l.bound_bottle_serial = $1 OR l.early_binding_serial = $1) AND
	l."status" <> 'cancelled' AND
	so."status" IN ('draft', 'planned', 'picking', 'on_hold')
LIMIT 1
`
	var binding storage.ActiveBinding
	err := tx.QueryRow(ctx, query, serialNumber).Scan(&binding.ShippingOrderID, &binding.LineID, &binding.OrderStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &binding, nil
}
