package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) StoreShipment(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
	query := `
WITH new_data AS (
	INSERT INTO shipment (id, "version", shipping_order_id, "status", shipment, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		"status" = excluded."status",
		shipment = excluded.shipment
	RETURNING id, "version", shipment
)
INSERT INTO shipment_history (id, "version", shipment)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		shipment.ID,
		shipment.Version,
		shipment.ShippingOrderID,
		shipment.Status,
		shipment,
		shipment.CreatedAt,
	)
	return err
}

func (s *_Storage) GetShipment(ctx context.Context, tx storage.Tx, id string) (model.Shipment, error) {
	query := `SELECT shipment FROM shipment WHERE id = $1`
	if isWriteTx(tx) {
		query += ` FOR UPDATE`
	}

	var shipment model.Shipment
	err := tx.QueryRow(ctx, query, id).Scan(&shipment)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Shipment{}, model.ErrShipmentNotFound
	}
	if err != nil {
		return model.Shipment{}, err
	}
	return shipment, nil
}

func (s *_Storage) ListShipments(ctx context.Context, tx storage.Tx, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		shipment
	FROM shipment
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR shipping_order_id = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR "status" = ANY($5))
)
SELECT
	total,
	shipment
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT shipment FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	limit := req.Limit
	if limit == 0 {
		limit = 1000
	}
	rows, err := tx.Query(ctx, query, req.Offset, limit, req.IDs, req.ShippingOrderIDs, req.Statuses)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer rows.Close()

	var res storage.ListShipmentsResult
	for rows.Next() {
		var total *int
		var shipment *model.Shipment

		if err := rows.Scan(&total, &shipment); err != nil {
			return storage.ListShipmentsResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if shipment != nil {
			res.Shipments = append(res.Shipments, *shipment)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListShipmentsResult{}, err
	}

	return res, nil
}

func (s *_Storage) AddProvenanceOutbox(ctx context.Context, tx storage.Tx, ts int64, key string, payload []byte) error {
	query := `INSERT INTO provenance_outbox(created_at, "key", msg) VALUES ($1, $2, $3)`
	_, err := tx.Exec(
		ctx,
		query,
		ts,
		key,
		payload,
	)
	return err
}

func (s *_Storage) GetProvenanceOutbox(ctx context.Context, tx storage.Tx, batchSize int) ([]storage.OutboxMsg, error) {
	query := `SELECT rec_id, "key", msg FROM provenance_outbox ORDER BY rec_id ASC LIMIT $1`
	rows, err := tx.Query(ctx, query, batchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.OutboxMsg, 0, batchSize)
	for rows.Next() {
		var recID sql.NullInt64
		var key sql.NullString
		data := make([]byte, 0)
		if err := rows.Scan(&recID, &key, &data); err != nil {
			return nil, err
		}
		record := storage.OutboxMsg{
			RecID: recID.Int64,
			Key:   key.String,
			Msg:   data,
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *_Storage) DeleteProvenanceOutbox(ctx context.Context, tx storage.Tx, recIDs ...int64) error {
	if len(recIDs) == 0 {
		return nil
	}

	query := `DELETE FROM provenance_outbox WHERE rec_id = ANY($1)`
	_, err := tx.Exec(ctx, query, recIDs)
	return err
}
