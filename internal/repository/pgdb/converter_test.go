package pgdb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/repository/pgdb/converter"
	"github.com/treinamento/produtos-service/internal/repository/pgdb/converter/generated"
)

func TestProductConverter(t *testing.T) {
	conv := &generated.ProductConverterImpl{}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	product := &domain.Product{
		ID:          3,
		Description: "Laranja",
		Price:       decimal.RequireFromString("4.50"),
		TaxType:     domain.TaxTypeTaxable,
		TaxRate:     decimal.RequireFromString("10"),
		Category:    &domain.Category{ID: 1, Name: "Frutas"},
		CreatedAt:   now,
	}

	model := conv.ToModel(product)
	assert.Equal(t, "TRIBUTAVEL", model.TaxType)
	assert.Equal(t, int64(1), model.CategoryID)
	assert.Equal(t, "Frutas", model.CategoryName)

	back := conv.ToEntity(model)
	require.NotNil(t, back.Category)
	assert.Equal(t, product.Category.Name, back.Category.Name)
	assert.True(t, product.Price.Equal(back.Price))
	assert.Equal(t, domain.TaxTypeTaxable, back.TaxType)

	product.Category = nil
	assert.Zero(t, conv.ToModel(product).CategoryID)

	assert.Nil(t, conv.ToEntity(nil))
	assert.NotNil(t, conv.ToArrEntity([]converter.ProductModel{}))
}
