package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/pkg/e"
)

// Product описывает продукт
type Product struct {
	ID          int64
	Description string
	Price       decimal.Decimal
	TaxType     TaxType
	TaxRate     decimal.Decimal
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewProduct создаёт продукт, проверяя инварианты полей, включая соответствие ставки типу налога.
func NewProduct(description string, price decimal.Decimal, taxType TaxType, taxRate decimal.Decimal,
	category *Category, now time.Time) (*Product, error) {
	if err := validateProduct(description, price, taxType, taxRate, category); err != nil {
		return nil, err
	}

	return &Product{
		Description: description,
		Price:       price,
		TaxType:     taxType,
		TaxRate:     taxRate,
		Category:    category,
		CreatedAt:   now,
	}, nil
}

// Update перезаписывает изменяемые поля значениями из values и проставляет UpdatedAt.
// ID и CreatedAt не меняются. При нарушении инвариантов продукт остаётся без изменений.
func (p *Product) Update(values *Product, now time.Time) error {
	if err := validateProduct(values.Description, values.Price, values.TaxType, values.TaxRate, values.Category); err != nil {
		return err
	}

	p.Description = values.Description
	p.Price = values.Price
	p.TaxType = values.TaxType
	p.TaxRate = values.TaxRate
	p.Category = values.Category
	p.UpdatedAt = &now

	return nil
}

// CategoryID возвращает идентификатор категории или 0, если категория не задана.
func (p *Product) CategoryID() int64 {
	if p.Category == nil {
		return 0
	}

	return p.Category.ID
}

func validateProduct(description string, price decimal.Decimal, taxType TaxType, taxRate decimal.Decimal, category *Category) error {
	if strings.TrimSpace(description) == "" {
		return e.ErrDescriptionRequired
	}

	if !price.IsPositive() {
		return e.ErrPriceMustBePositive
	}

	if !taxType.IsValid() {
		return e.ErrInvalidTaxType
	}

	if taxRate.IsNegative() {
		return e.ErrNegativeTaxRate
	}

	if !taxType.IsValidRate(taxRate) {
		return e.ErrInvalidTaxRate
	}

	if category == nil {
		return e.ErrCategoryRequired
	}

	return nil
}
