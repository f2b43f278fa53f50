package usecase

import (
	"context"
	"strings"

	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/pkg/clock"
	"github.com/treinamento/produtos-service/pkg/e"
)

// CategoryUseCase управляет справочником категорий.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	validator    *RequestValidator
	clock        clock.Clock
}

func NewCategoryUC(categoryRepo CategoryRepository, validator *RequestValidator, clock clock.Clock) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		validator:    validator,
		clock:        clock,
	}
}

func (c *CategoryUseCase) Create(ctx context.Context, req *CategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.Create"

	if err := c.validator.ValidateCategory(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(strings.TrimSpace(req.Name), c.clock.Now()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CategoryUseCase) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "CategoryUseCase.GetByID"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CategoryUseCase) List(ctx context.Context) ([]domain.Category, error) {
	const op = "CategoryUseCase.List"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}
