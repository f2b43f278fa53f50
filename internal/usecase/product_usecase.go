package usecase

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/pkg/clock"
	"github.com/treinamento/produtos-service/pkg/e"
	"github.com/treinamento/produtos-service/pkg/logger"
)

// ProductUseCase реализует бизнес-логику управления продуктами.
type ProductUseCase struct {
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	txManager   TxManager
	cacheRepo   CacheRepository
	validator   *RequestValidator
	clock       clock.Clock
	logger      logger.Logger

	// cacheGen растёт при каждой инвалидации кэша
	cacheGen atomic.Uint64
}

// NewProductUC создаёт usecase продуктов. cacheRepo может быть nil, тогда кэш не используется.
func NewProductUC(
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	txManager TxManager,
	cacheRepo CacheRepository,
	validator *RequestValidator,
	clock clock.Clock,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		txManager:   txManager,
		cacheRepo:   cacheRepo,
		validator:   validator,
		clock:       clock,
		logger:      logger,
	}
}

// Create валидирует запрос, сохраняет продукт и событие produto.criado в одной транзакции.
func (p *ProductUseCase) Create(ctx context.Context, req *ProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	category, err := p.validator.ValidateProduct(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := req.ToProduct(category, p.clock.Now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var created *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = p.productRepo.Create(ctx, product)
		if err != nil {
			return err
		}

		return p.createEvent(ctx, ProductCreated, created.ID, created)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// GetByID возвращает продукт, сначала проверяя кэш.
func (p *ProductUseCase) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	if p.cacheRepo != nil {
		cached, err := p.cacheRepo.GetProduct(ctx, id)
		if err != nil {
			p.logger.Warnf("Failed to get product from cache: %v", e.Wrap(op, err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	gen := p.cacheGen.Load()
	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление продукта в кэш
	if p.cacheRepo != nil {
		toCache := *product
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProduct(bgCtx, &toCache); err != nil {
				p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
				return
			}

			// пока продукт читался и записывался в кэш, его могли изменить или удалить
			if p.cacheGen.Load() != gen {
				if err := p.cacheRepo.DeleteProduct(bgCtx, toCache.ID); err != nil {
					p.logger.Warnf("Failed to drop stale cached product: %v", e.Wrap(op, err))
				}
			}
		}()
	}

	return product, nil
}

// FindByDescription возвращает продукты, описание которых содержит fragment.
func (p *ProductUseCase) FindByDescription(ctx context.Context, fragment string) ([]domain.Product, error) {
	const op = "ProductUseCase.FindByDescription"

	products, err := p.productRepo.FindByDescription(ctx, fragment)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// List возвращает страницу продуктов, упорядоченных по идентификатору.
func (p *ProductUseCase) List(ctx context.Context, req *PageReq) (*Page[domain.Product], error) {
	const op = "ProductUseCase.List"

	// page*size не должно переполнять int
	if req.Page < 0 || req.Size <= 0 || req.Page > math.MaxInt/req.Size {
		return nil, e.Wrap(op, e.ErrInvalidPage)
	}

	products, total, err := p.productRepo.List(ctx, req.Offset(), req.Size)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(products, req, total), nil
}

// Update заменяет изменяемые поля продукта значениями из запроса.
func (p *ProductUseCase) Update(ctx context.Context, id int64, req *ProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	category, err := p.validator.ValidateProduct(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	values, err := req.ToProduct(category, p.clock.Now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var updated *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := p.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := product.Update(values, p.clock.Now()); err != nil {
			return err
		}

		updated, err = p.productRepo.Update(ctx, product)
		if err != nil {
			return err
		}

		return p.createEvent(ctx, ProductUpdated, updated.ID, updated)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, id)

	return updated, nil
}

// Delete удаляет продукт без возможности восстановления.
func (p *ProductUseCase) Delete(ctx context.Context, id int64) error {
	const op = "ProductUseCase.Delete"

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		if err := p.productRepo.Delete(ctx, id); err != nil {
			return err
		}

		return p.createEvent(ctx, ProductDeleted, id, nil)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidate(ctx, id)

	return nil
}

// createEvent сохраняет событие в outbox в рамках текущей транзакции.
func (p *ProductUseCase) createEvent(ctx context.Context, eventType OutboxEventType, productID int64, product *domain.Product) error {
	now := p.clock.Now()
	payload := ProductEventPayload{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: now,
		ProductID:  productID,
	}
	if product != nil {
		payload.Product = NewProductSnapshot(product)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   payload.EventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   data,
		Status:    Pending,
		CreatedAt: now,
	})

	return err
}

// invalidate удаляет из кэша устаревшие данные продукта.
// Счётчик увеличивается до удаления, чтобы фоновая запись из GetByID увидела изменение.
func (p *ProductUseCase) invalidate(ctx context.Context, id int64) {
	if p.cacheRepo == nil {
		return
	}

	p.cacheGen.Add(1)

	if err := p.cacheRepo.DeleteProduct(ctx, id); err != nil {
		p.logger.Warnf("Failed to delete product from cache: %v", err)
	}
}
