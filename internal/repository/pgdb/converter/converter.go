//go:generate goverter gen github.com/treinamento/produtos-service/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
type ProductConverter interface {
	// goverter:map Category.ID CategoryID
	// goverter:map Category.Name CategoryName
	ToModel(entity *domain.Product) *ProductModel
	// goverter:map . Category | ProductModelCategory
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []CategoryModel) []domain.Category
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
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

// ProductModelCategory собирает категорию из полей JOIN-а; даты категории в выборку продукта не входят.
func ProductModelCategory(model ProductModel) *domain.Category {
	return &domain.Category{
		ID:   model.CategoryID,
		Name: model.CategoryName,
	}
}
