package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRedisModel struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	TaxType      string          `json:"tax_type"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}
