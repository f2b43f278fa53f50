package memory

import (
	"context"
	"sync"
	"time"

	"github.com/treinamento/produtos-service/internal/usecase"
)

// OutboxRepo хранит события outbox в памяти. Публикация в брокер в memory-режиме не выполняется.
type OutboxRepo struct {
	mu     sync.Mutex
	events []*usecase.OutboxEvent
	nextID int64
}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (o *OutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	stored := *event
	stored.ID = o.nextID
	o.events = append(o.events, &stored)

	res := stored
	return &res, nil
}

func (o *OutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var result []*usecase.OutboxEvent
	for _, event := range o.events {
		if len(result) >= limit {
			break
		}
		if event.Status == usecase.Pending {
			event.Status = usecase.Processing
			res := *event
			result = append(result, &res)
		}
	}

	return result, nil
}

func (o *OutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, event := range o.events {
		if event.ID == id && event.Status == usecase.Processing {
			now := time.Now().UTC()
			event.Status = usecase.Processed
			event.ProcessedAt = &now
		}
	}

	return nil
}

func (o *OutboxRepo) ReleaseProcessing(ctx context.Context, id int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, event := range o.events {
		if event.ID == id && event.Status == usecase.Processing {
			event.Status = usecase.Pending
		}
	}

	return nil
}

// Events возвращает копию всех сохранённых событий.
func (o *OutboxRepo) Events() []usecase.OutboxEvent {
	o.mu.Lock()
	defer o.mu.Unlock()

	result := make([]usecase.OutboxEvent, 0, len(o.events))
	for _, event := range o.events {
		result = append(result, *event)
	}

	return result
}
