package usecase

import (
	"context"

	"github.com/treinamento/produtos-service/internal/domain"
)

type ProductUC interface {
	Create(ctx context.Context, req *ProductReq) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByDescription(ctx context.Context, fragment string) ([]domain.Product, error)
	List(ctx context.Context, req *PageReq) (*Page[domain.Product], error)
	Update(ctx context.Context, id int64, req *ProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryUC interface {
	Create(ctx context.Context, req *CategoryReq) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}
