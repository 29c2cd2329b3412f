// Package postgres implements the fulfillment storage interfaces with raw SQL
// over a pgx connection pool. Domain documents are stored as JSONB alongside
// the columns the list filters and row locks need.
package postgres

import (
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type _Storage struct {
	dbPool *pgxpool.Pool
}
type _TxWrapper struct {
	tx    pgx.Tx
	write bool
}

type _RowWrapper struct {
	row pgx.Row
}

type _RowsWrapper struct {
	rows pgx.Rows
}

type _ResultWrapper struct {
	result pgconn.CommandTag
}

func NewStorageWithPool(dbPool *pgxpool.Pool) *_Storage {
	return &_Storage{
		dbPool: dbPool,
	}
}

func NewStorageWithConfig(config util.PostgresDatabaseConfig) (*_Storage, error) {
	dbPool, err := util.NewPostgresDBPool(config)
	if err != nil {
		return nil, err
	}

	return NewStorageWithPool(dbPool), nil
}
