package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treinamento/produtos-service/pkg/e"
)

func TestTaxType_IsValidRate(t *testing.T) {
	tests := []struct {
		name    string
		taxType TaxType
		rate    string
		want    bool
	}{
		{"taxable with positive rate", TaxTypeTaxable, "10", true},
		{"taxable with fractional rate", TaxTypeTaxable, "0.01", true},
		{"taxable with zero rate", TaxTypeTaxable, "0", false},
		{"taxable with negative rate", TaxTypeTaxable, "-1", false},
		{"exempt with zero rate", TaxTypeExempt, "0", true},
		{"exempt with zero scaled rate", TaxTypeExempt, "0.00", true},
		{"exempt with positive rate", TaxTypeExempt, "10", false},
		{"unknown type", TaxType("OUTRO"), "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.taxType.IsValidRate(decimal.RequireFromString(tt.rate)))
		})
	}
}

func TestParseTaxType(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		tt, err := ParseTaxType("TRIBUTAVEL")
		require.NoError(t, err)
		assert.Equal(t, TaxTypeTaxable, tt)

		tt, err = ParseTaxType("ISENTO")
		require.NoError(t, err)
		assert.Equal(t, TaxTypeExempt, tt)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := ParseTaxType("tributavel")
		assert.ErrorIs(t, err, e.ErrInvalidTaxType)
	})
}
