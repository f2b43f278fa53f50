package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/repository/memory"
	"github.com/treinamento/produtos-service/internal/usecase"
)

func newValidator(t *testing.T) *usecase.RequestValidator {
	t.Helper()

	categories := memory.NewCategoryRepo()
	_, err := categories.Create(context.Background(), domain.NewCategory("Frutas", start))
	require.NoError(t, err)

	return usecase.NewRequestValidator(categories)
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)

	result := make(map[string]string, len(verr.Errors))
	for _, fe := range verr.Errors {
		result[fe.FieldName] = fe.Message
	}
	return result
}

func TestRequestValidator_ValidateProduct(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *usecase.ProductReq)
		want   map[string]string
	}{
		{
			name:   "blank description",
			mutate: func(r *usecase.ProductReq) { r.Description = "   " },
			want:   map[string]string{"descricao": "não deve estar em branco"},
		},
		{
			name:   "zero price",
			mutate: func(r *usecase.ProductReq) { r.Price = dec("0") },
			want:   map[string]string{"preco": "deve ser maior que 0"},
		},
		{
			name:   "missing price",
			mutate: func(r *usecase.ProductReq) { r.Price = nil },
			want:   map[string]string{"preco": "não deve ser nulo"},
		},
		{
			name:   "negative rate skips the tax check",
			mutate: func(r *usecase.ProductReq) { r.TaxRate = dec("-1") },
			want:   map[string]string{"aliquotaImposto": "deve ser maior ou igual a 0"},
		},
		{
			name:   "missing tax type skips the tax check",
			mutate: func(r *usecase.ProductReq) { r.TaxType = "" },
			want:   map[string]string{"tipoTributacao": "não deve ser nulo"},
		},
		{
			name:   "unknown tax type",
			mutate: func(r *usecase.ProductReq) { r.TaxType = "OUTRO" },
			want:   map[string]string{"tipoTributacao": "deve ser um dos valores: TRIBUTAVEL ISENTO"},
		},
		{
			name:   "taxable with zero rate",
			mutate: func(r *usecase.ProductReq) { r.TaxRate = dec("0") },
			want:   map[string]string{"aliquotaImposto": "Aliquota imposto invalida"},
		},
		{
			name:   "price with more than two decimal places",
			mutate: func(r *usecase.ProductReq) { r.Price = dec("4.005") },
			want:   map[string]string{"preco": "valor numérico fora do limite (<17 dígitos>,<2 dígitos> esperado)"},
		},
		{
			name:   "taxable rate that rounds to zero",
			mutate: func(r *usecase.ProductReq) { r.TaxRate = dec("0.001") },
			want:   map[string]string{"aliquotaImposto": "valor numérico fora do limite (<17 dígitos>,<2 dígitos> esperado)"},
		},
		{
			name:   "tiny positive price is compared exactly",
			mutate: func(r *usecase.ProductReq) { r.Price = dec("1e-400") },
			want:   map[string]string{"preco": "valor numérico fora do limite (<17 dígitos>,<2 dígitos> esperado)"},
		},
		{
			name:   "price above column precision",
			mutate: func(r *usecase.ProductReq) { r.Price = dec("100000000000000000") },
			want:   map[string]string{"preco": "valor numérico fora do limite (<17 dígitos>,<2 dígitos> esperado)"},
		},
		{
			name:   "tiny negative rate",
			mutate: func(r *usecase.ProductReq) { r.TaxRate = dec("-1e-400") },
			want:   map[string]string{"aliquotaImposto": "deve ser maior ou igual a 0"},
		},
		{
			name:   "missing category id",
			mutate: func(r *usecase.ProductReq) { r.CategoryID = 0 },
			want:   map[string]string{"categoriaId": "deve ser maior que 0"},
		},
		{
			name: "several fields at once",
			mutate: func(r *usecase.ProductReq) {
				r.Description = ""
				r.CategoryID = 5
				r.TaxType = domain.TaxTypeExempt
			},
			want: map[string]string{
				"descricao":       "não deve estar em branco",
				"categoriaId":     "não existe",
				"aliquotaImposto": "Aliquota imposto invalida",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReq("Laranja")
			tt.mutate(req)

			_, err := v.ValidateProduct(ctx, req)
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}

	t.Run("trailing zeros beyond two places are accepted", func(t *testing.T) {
		req := validReq("Laranja")
		req.Price = dec("4.500")
		_, err := v.ValidateProduct(ctx, req)
		require.NoError(t, err)
	})

	t.Run("valid request returns category", func(t *testing.T) {
		category, err := v.ValidateProduct(ctx, validReq("Laranja"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
	})
}

func TestRequestValidator_ValidateCategory(t *testing.T) {
	v := newValidator(t)

	require.NoError(t, v.ValidateCategory(&usecase.CategoryReq{Name: "Legumes"}))

	errs := fieldErrors(t, v.ValidateCategory(&usecase.CategoryReq{Name: " "}))
	assert.Equal(t, map[string]string{"nome": "não deve estar em branco"}, errs)
}
