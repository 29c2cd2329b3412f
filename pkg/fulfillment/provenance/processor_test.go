package provenance_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/provenance"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	mock_storage "github.com/cellarlink/cellarlink/test/mock/fulfillment/storage"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestProcessorDeliversOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	var received []string
	ledger := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		// The ledger rejects the second bottle to keep it in the outbox.
		if strings.Contains(string(body), "BTL-002") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		received = append(received, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer ledger.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shipmentStorage := mock_storage.NewMockShipmentStorage(ctrl)
	tx := mock_storage.NewMockTx(ctrl)

	msgs := []storage.OutboxMsg{
		{RecID: 1, Key: "BTL-001", Msg: []byte(`{"serial_number":"BTL-001"}`)},
		{RecID: 2, Key: "BTL-002", Msg: []byte(`{"serial_number":"BTL-002"}`)},
	}

	drained := make(chan struct{})
	var drainOnce sync.Once

	first := shipmentStorage.EXPECT().CreateTx(gomock.Any()).Return(tx, ctx, nil)
	shipmentStorage.EXPECT().GetProvenanceOutbox(gomock.Any(), tx, 10).Return(msgs, nil).After(first)
	shipmentStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, ctx, nil)
	shipmentStorage.EXPECT().DeleteProvenanceOutbox(gomock.Any(), tx, int64(1)).Return(nil)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	// Later passes see only the rejected event; nothing gets delivered so the
	// processor gives up until the next tick.
	shipmentStorage.EXPECT().CreateTx(gomock.Any()).Return(tx, ctx, nil).AnyTimes()
	shipmentStorage.EXPECT().GetProvenanceOutbox(gomock.Any(), tx, 10).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, batchSize int) ([]storage.OutboxMsg, error) {
			drainOnce.Do(func() { close(drained) })
			return []storage.OutboxMsg{msgs[1]}, nil
		},
	).AnyTimes()

	processor, err := provenance.NewProcessorWithConfig(
		provenance.Config{
			Endpoint:      ledger.URL,
			CheckInterval: 1,
			BatchSize:     10,
			Timeout:       5,
			MaxRetry:      1,
			RatePerSecond: 100,
		},
		provenance.WithStorage(shipmentStorage),
	)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		processor.Run(ctx)
	}()

	select {
	case <-drained:
	case <-time.After(10 * time.Second):
		t.Fatal("processor never drained the outbox")
	}
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{`{"serial_number":"BTL-001"}`}, received)
}
