package provenance

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage/postgres"
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

type Config struct {
	Database      util.PostgresDatabaseConfig
	Endpoint      string
	CheckInterval int
	BatchSize     int
	Timeout       int
	MaxRetry      int
	RatePerSecond int
}

type ProcessorOption func(p *Processor)

func WithStorage(shipmentStorage storage.ShipmentStorage) ProcessorOption {
	return func(p *Processor) {
		p.storage = shipmentStorage
	}
}

func WithHTTPClient(client *http.Client) ProcessorOption {
	return func(p *Processor) {
		p.client = client
	}
}

// Processor drains the provenance outbox and posts events to the provenance
// ledger endpoint. Delivery failures are retried and otherwise left in the
// outbox for the next pass.
type Processor struct {
	endpoint      string
	retry         int
	batchSize     int
	checkInterval time.Duration
	timeout       time.Duration
	limiter       *rate.Limiter
	storage       storage.ShipmentStorage
	client        *http.Client

	deliveredCount metric.Int64Counter
	failedCount    metric.Int64Counter
}

func NewProcessorWithConfig(cfg Config, opts ...ProcessorOption) (*Processor, error) {
	ratePerSecond := cfg.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 10
	}

	res := &Processor{
		endpoint:      cfg.Endpoint,
		retry:         cfg.MaxRetry,
		batchSize:     cfg.BatchSize,
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
		timeout:       time.Second * time.Duration(cfg.Timeout),
		limiter:       rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		client:        http.DefaultClient,

		deliveredCount: otlp_util.NewInt64Counter("fulfillment.provenance.event.delivered.count", metric.WithDescription("The total number of provenance events delivered")),
		failedCount:    otlp_util.NewInt64Counter("fulfillment.provenance.event.failed.count", metric.WithDescription("The total number of provenance events that failed to deliver")),
	}

	for _, opt := range opts {
		opt(res)
	}
	if res.storage == nil {
		shipmentStorage, err := postgres.NewStorageWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		res.storage = shipmentStorage
	}

	return res, nil
}

func (p *Processor) Run(ctx context.Context) {
	logrus.Info("provenance event processor is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.checkInterval):
			p._Proc(ctx)
		}
	}
}

func (p *Processor) _Proc(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := p.getEvents(ctx)
		if err != nil {
			logrus.Errorf("failed to get provenance events: %v", err)
			return
		}
		if len(msgs) == 0 {
			return
		}

		logrus.Debugf("got %d provenance events", len(msgs))
		ids := make([]int64, 0, len(msgs))
		for i := range msgs {
			if err := p.limiter.Wait(ctx); err != nil {
				break
			}
			if err := p.postEvent(ctx, msgs[i]); err != nil {
				logrus.Warnf("failed to deliver provenance event %d: %v", msgs[i].RecID, err)
				p.failedCount.Add(ctx, 1)
				continue
			}
			p.deliveredCount.Add(ctx, 1)
			ids = append(ids, msgs[i].RecID)
		}
		if len(ids) == 0 {
			return
		}
		if err := p.deleteEvents(ctx, ids); err != nil {
			logrus.Errorf("failed to delete delivered provenance events: %v", err)
			return
		}
	}
}

func (p *Processor) getEvents(ctx context.Context) ([]storage.OutboxMsg, error) {
	tx, ctx, err := p.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return p.storage.GetProvenanceOutbox(ctx, tx, p.batchSize)
}

func (p *Processor) deleteEvents(ctx context.Context, recIDs []int64) error {
	tx, ctx, err := p.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.storage.DeleteProvenanceOutbox(ctx, tx, recIDs...); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (p *Processor) postEvent(ctx context.Context, msg storage.OutboxMsg) error {
	return retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(msg.Msg))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := p.client.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}()

			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return fmt.Errorf("provenance ledger returned status %d", resp.StatusCode)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(p.retry)),
		retry.LastErrorOnly(true),
	)
}
