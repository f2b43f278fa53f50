package usecase

import "context"

// TxManager выполняет fn атомарно; транзакция передаётся репозиториям через контекст.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
