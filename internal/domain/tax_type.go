package domain

import (
	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/pkg/e"
)

// TaxType описывает тип налогообложения продукта и определяет допустимую ставку налога.
type TaxType string

const (
	TaxTypeTaxable TaxType = "TRIBUTAVEL" // облагается налогом: ставка строго больше нуля
	TaxTypeExempt  TaxType = "ISENTO"     // освобождён от налога: ставка ровно ноль
)

// ParseTaxType возвращает TaxType по строковому значению.
func ParseTaxType(s string) (TaxType, error) {
	t := TaxType(s)
	if !t.IsValid() {
		return "", e.Wrap(s, e.ErrInvalidTaxType)
	}

	return t, nil
}

func (t TaxType) IsValid() bool {
	switch t {
	case TaxTypeTaxable, TaxTypeExempt:
		return true
	default:
		return false
	}
}

// IsValidRate проверяет, допустима ли ставка налога для данного типа.
func (t TaxType) IsValidRate(rate decimal.Decimal) bool {
	switch t {
	case TaxTypeTaxable:
		return rate.IsPositive()
	case TaxTypeExempt:
		return rate.IsZero()
	default:
		return false
	}
}

func (t TaxType) String() string {
	return string(t)
}
