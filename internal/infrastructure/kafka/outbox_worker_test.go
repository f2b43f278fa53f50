package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/internal/repository/memory"
	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/logger"
)

type fakeProducer struct {
	mu       sync.Mutex
	messages []*usecase.WriteRawMessageReq
	fail     bool
}

func (f *fakeProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return errors.New("dial tcp: connection refused")
	}
	f.messages = append(f.messages, req)
	return nil
}

func (f *fakeProducer) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *fakeProducer) sent() []*usecase.WriteRawMessageReq {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*usecase.WriteRawMessageReq(nil), f.messages...)
}

func seedEvents(t *testing.T, repo *memory.OutboxRepo, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := repo.Create(context.Background(), &usecase.OutboxEvent{
			EventID:   "ev",
			EventType: usecase.ProductCreated,
			ProductID: int64(i),
			Payload:   []byte(`{}`),
			Status:    usecase.Pending,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
}

func countStatus(repo *memory.OutboxRepo, status usecase.OutboxStatus) int {
	n := 0
	for _, ev := range repo.Events() {
		if ev.Status == status {
			n++
		}
	}
	return n
}

func TestOutboxWorker_DrainsOnStart(t *testing.T) {
	repo := memory.NewOutboxRepo()
	seedEvents(t, repo, 5)
	producer := &fakeProducer{}

	w := NewOutboxWorker(repo, logger.NewNopLogger(), producer,
		&cfg.OutboxCfg{BatchSize: 2, PollInterval: time.Hour}, "outbox_pending", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	assert.Eventually(t, func() bool {
		return countStatus(repo, usecase.Processed) == 5
	}, 2*time.Second, 10*time.Millisecond)

	sent := producer.sent()
	require.Len(t, sent, 5)
	assert.Equal(t, int64(1), sent[0].ProductID)
	assert.Equal(t, usecase.ProductCreated, sent[0].EventType)

	require.NoError(t, w.Stop(context.Background()))
}

func TestOutboxWorker_ReleasesOnPublishFailure(t *testing.T) {
	repo := memory.NewOutboxRepo()
	seedEvents(t, repo, 3)
	producer := &fakeProducer{fail: true}

	w := NewOutboxWorker(repo, logger.NewNopLogger(), producer,
		&cfg.OutboxCfg{BatchSize: 10, PollInterval: 20 * time.Millisecond}, "outbox_pending", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, countStatus(repo, usecase.Processed))

	producer.setFail(false)
	assert.Eventually(t, func() bool {
		return countStatus(repo, usecase.Processed) == 3
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop(context.Background()))
}

func TestOutboxWorker_StopIsIdempotent(t *testing.T) {
	w := NewOutboxWorker(memory.NewOutboxRepo(), logger.NewNopLogger(), &fakeProducer{},
		&cfg.OutboxCfg{BatchSize: 1, PollInterval: time.Hour}, "outbox_pending", "")
	w.Start(context.Background())

	require.NoError(t, w.Stop(context.Background()))
	require.NoError(t, w.Stop(context.Background()))
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("dial tcp 127.0.0.1:9092: Connection Refused")))
	assert.True(t, isRetryableError(errors.New("read: i/o timeout")))
	assert.False(t, isRetryableError(errors.New("message too large")))
	assert.False(t, isRetryableError(nil))
}

func TestToMessage(t *testing.T) {
	msg := toMessage(usecase.NewWriteRawMessageReq(42, usecase.ProductUpdated, []byte(`{"a":1}`)))

	assert.Equal(t, []byte("42"), msg.Key)
	assert.Equal(t, []byte(`{"a":1}`), msg.Value)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, eventTypeHeader, msg.Headers[0].Key)
	assert.Equal(t, []byte("produto.atualizado"), msg.Headers[0].Value)
}
