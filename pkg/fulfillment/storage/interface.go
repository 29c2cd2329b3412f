package storage

import (
	"context"
	"database/sql"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type TxWrapperOption struct {
	write bool
	level sql.IsolationLevel
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListShippingOrdersRequest is the request to list shipping orders.
type ListShippingOrdersRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs         []string                    `json:"ids"`          // The IDs of the shipping orders.
	CustomerIDs []string                    `json:"customer_ids"` // Customers owning the orders.
	VoucherIDs  []string                    `json:"voucher_ids"`  // Orders having a line on any of these vouchers.
	Statuses    []model.ShippingOrderStatus `json:"statuses"`     // Statuses of the orders.
}

// ListShippingOrdersResult is the result of listing shipping orders.
type ListShippingOrdersResult struct {
	Total  int                   `json:"total"`
	Orders []model.ShippingOrder `json:"orders"`
}

type ListExceptionsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	ShippingOrderIDs []string                `json:"shipping_order_ids"`
	Types            []model.ExceptionType   `json:"types"`
	Statuses         []model.ExceptionStatus `json:"statuses"`
}

type ListExceptionsResult struct {
	Total      int                            `json:"total"`
	Exceptions []model.ShippingOrderException `json:"exceptions"`
}

type ShippingOrderStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreShippingOrder(ctx context.Context, tx Tx, so model.ShippingOrder) error
	GetShippingOrder(ctx context.Context, tx Tx, id string) (model.ShippingOrder, error)
	ListShippingOrders(ctx context.Context, tx Tx, req ListShippingOrdersRequest) (ListShippingOrdersResult, error)
	AddException(ctx context.Context, tx Tx, exception model.ShippingOrderException) error
	GetException(ctx context.Context, tx Tx, id string) (model.ShippingOrderException, error)
	ResolveException(ctx context.Context, tx Tx, id string, ts int64, resolvedBy string) error
	ListExceptions(ctx context.Context, tx Tx, req ListExceptionsRequest) (ListExceptionsResult, error)
	AddAuditLog(ctx context.Context, tx Tx, entry model.AuditLogEntry) error
}

// ListBottlesRequest is the request to list serialized bottles.
type ListBottlesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	SerialNumbers []string            `json:"serial_numbers"`
	AllocationID  string              `json:"allocation_id"`
	WarehouseID   string              `json:"warehouse_id"` // Empty matches all warehouses.
	States        []model.BottleState `json:"states"`
}

type ListBottlesResult struct {
	Total   int                      `json:"total"`
	Bottles []model.SerializedBottle `json:"bottles"`
}

type ListCasesRequest struct {
	AllocationID      string                      `json:"allocation_id"`
	WarehouseID       string                      `json:"warehouse_id"`
	IntegrityStatuses []model.CaseIntegrityStatus `json:"integrity_statuses"`
}

type ListCasesResult struct {
	Total int                   `json:"total"`
	Cases []model.InventoryCase `json:"cases"`
}

// ActiveBinding describes the shipping order line currently holding a bottle.
type ActiveBinding struct {
	ShippingOrderID string                    `json:"shipping_order_id"`
	LineID          string                    `json:"line_id"`
	OrderStatus     model.ShippingOrderStatus `json:"order_status"`
}

type InventoryStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// GetBottle locks the bottle row (SELECT ... FOR UPDATE) when called
	// inside a write transaction. The bind/unbind check-then-act sections
	// rely on this.
	GetBottle(ctx context.Context, tx Tx, serialNumber string) (model.SerializedBottle, error)
	StoreBottle(ctx context.Context, tx Tx, bottle model.SerializedBottle) error
	ListBottles(ctx context.Context, tx Tx, req ListBottlesRequest) (ListBottlesResult, error)
	ListCases(ctx context.Context, tx Tx, req ListCasesRequest) (ListCasesResult, error)

	// GetActiveBindingForBottle returns the line of an active (non-terminal)
	// shipping order the bottle is late-bound to, or nil when the bottle is
	// not bound anywhere.
	GetActiveBindingForBottle(ctx context.Context, tx Tx, serialNumber string) (*ActiveBinding, error)
}

type ListVouchersRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs         []string `json:"ids"`
	CustomerIDs []string `json:"customer_ids"`
}

type ListVouchersResult struct {
	Total    int             `json:"total"`
	Vouchers []model.Voucher `json:"vouchers"`
}

type VoucherStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// GetVoucher locks the voucher row when called inside a write
	// transaction; the lock/unlock critical sections rely on this.
	GetVoucher(ctx context.Context, tx Tx, id string) (model.Voucher, error)
	StoreVoucher(ctx context.Context, tx Tx, voucher model.Voucher) error
	ListVouchers(ctx context.Context, tx Tx, req ListVouchersRequest) (ListVouchersResult, error)
}

type ListShipmentsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs              []string               `json:"ids"`
	ShippingOrderIDs []string               `json:"shipping_order_ids"`
	Statuses         []model.ShipmentStatus `json:"statuses"`
}

type ListShipmentsResult struct {
	Total     int              `json:"total"`
	Shipments []model.Shipment `json:"shipments"`
}

type OutboxMsg struct {
	RecID int64
	Key   string
	Msg   []byte
}

type ShipmentStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreShipment(ctx context.Context, tx Tx, shipment model.Shipment) error
	GetShipment(ctx context.Context, tx Tx, id string) (model.Shipment, error)
	ListShipments(ctx context.Context, tx Tx, req ListShipmentsRequest) (ListShipmentsResult, error)

	AddProvenanceOutbox(ctx context.Context, tx Tx, ts int64, key string, payload []byte) error
	GetProvenanceOutbox(ctx context.Context, tx Tx, batchSize int) ([]OutboxMsg, error)
	DeleteProvenanceOutbox(ctx context.Context, tx Tx, recIDs ...int64) error
}
