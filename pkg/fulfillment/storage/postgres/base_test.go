package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type BaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	pgPool *pgxpool.Pool
}

func (s *BaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort, err := strconv.Atoi(os.Getenv("DATABASE_PORT"))
	if err != nil {
		dbPort = 5432
	}
	dbName := os.Getenv("DATABASE_NAME")
	userName := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")

	config := util.PostgresDatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		Database: dbName,
		User:     userName,
		Password: password,
		SSLMode:  "disable",
		PoolSize: 5,
	}

	pool, err := util.NewPostgresDBPool(config)
	s.Require().NoError(err)
	s.pgPool = pool

	tableNames := []string{
		"shipping_order",
		"shipping_order_history",
		"shipping_order_line",
		"shipping_order_exception",
		"shipping_order_audit_log",
		"bottle",
		"inventory_case",
		"voucher",
		"voucher_history",
		"shipment",
		"shipment_history",
		"provenance_outbox",
	}
	for _, tableName := range tableNames {
		_, err := pool.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %q`, tableName))
		s.Require().NoError(err)
	}
}

func (s *BaseTestSuite) TearDownTest() {
	s.pgPool.Close()
}
