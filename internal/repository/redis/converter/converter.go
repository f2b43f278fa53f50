//go:generate goverter gen github.com/treinamento/produtos-service/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/internal/domain"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
type ProductConverter interface {
	// goverter:map Category.ID CategoryID
	// goverter:map Category.Name CategoryName
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	// goverter:map . Category | RedisModelCategory
	ToEntity(model *ProductRedisModel) *domain.Product
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}

func RedisModelCategory(model ProductRedisModel) *domain.Category {
	return &domain.Category{
		ID:   model.CategoryID,
		Name: model.CategoryName,
	}
}
