package postgres

import (
	"context"
	"errors"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) GetVoucher(ctx context.Context, tx storage.Tx, id string) (model.Voucher, error) {
	query := `SELECT voucher FROM voucher WHERE id = $1`
	if isWriteTx(tx) {
		query += ` FOR UPDATE`
	}

	var voucher model.Voucher
	err := tx.QueryRow(ctx, query, id).Scan(&voucher)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Voucher{}, model.ErrVoucherNotFound
	}
	if err != nil {
		return model.Voucher{}, err
	}
	return voucher, nil
}

func (s *_Storage) StoreVoucher(ctx context.Context, tx storage.Tx, voucher model.Voucher) error {
	query := `
WITH new_data AS (
	INSERT INTO voucher (id, "version", customer_id, allocation_id, lifecycle_state, voucher)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		customer_id = excluded.customer_id,
		allocation_id = excluded.allocation_id,
		lifecycle_state = excluded.lifecycle_state,
		voucher = excluded.voucher
	RETURNING id, "version", voucher
)
INSERT INTO voucher_history (id, "version", voucher)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		voucher.ID,
		voucher.Version,
		voucher.CustomerID,
		voucher.AllocationID,
		voucher.LifecycleState,
		voucher,
	)
	return err
}

func (s *_Storage) ListVouchers(ctx context.Context, tx storage.Tx, req storage.ListVouchersRequest) (storage.ListVouchersResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		id,
		voucher
	FROM voucher
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR customer_id = ANY($4))
)
SELECT
	total,
	voucher
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT voucher FROM filtered_record ORDER BY id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	limit := req.Limit
	if limit == 0 {
		limit = 1000
	}
	rows, err := tx.Query(ctx, query, req.Offset, limit, req.IDs, req.CustomerIDs)
	if err != nil {
		return storage.ListVouchersResult{}, err
	}
	defer rows.Close()

	var res storage.ListVouchersResult
	for rows.Next() {
		var total *int
		var voucher *model.Voucher

		if err := rows.Scan(&total, &voucher); err != nil {
			return storage.ListVouchersResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if voucher != nil {
			res.Vouchers = append(res.Vouchers, *voucher)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListVouchersResult{}, err
	}

	return res, nil
}
