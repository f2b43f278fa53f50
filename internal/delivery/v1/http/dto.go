package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/usecase"
)

func init() {
	// preco и aliquotaImposto отдаются числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type ProductResponse struct {
	ID          int64             `json:"id"`
	Description string            `json:"descricao"`
	Price       decimal.Decimal   `json:"preco"`
	TaxType     domain.TaxType    `json:"tipoTributacao"`
	TaxRate     decimal.Decimal   `json:"aliquotaImposto"`
	Category    *CategoryResponse `json:"categoria"`
	CreatedAt   time.Time         `json:"criadoEm"`
	UpdatedAt   *time.Time        `json:"atualizadoEm"`
}

// PageResponse повторяет форму страницы, привычную клиентам сервиса.
type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	Empty            bool  `json:"empty"`
}

func NewCategoryResponse(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

func NewProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Description: p.Description,
		Price:       p.Price,
		TaxType:     p.TaxType,
		TaxRate:     p.TaxRate,
		Category:    NewCategoryResponse(p.Category),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductResponses(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *NewProductResponse(&products[i]))
	}
	return result
}

func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, *NewCategoryResponse(&categories[i]))
	}
	return result
}

func NewProductPageResponse(page *usecase.Page[domain.Product]) *PageResponse[ProductResponse] {
	content := NewProductResponses(page.Content)
	return &PageResponse[ProductResponse]{
		Content:          content,
		First:            page.IsFirst(),
		Last:             page.IsLast(),
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages(),
		Number:           page.Number,
		Size:             page.Size,
		NumberOfElements: len(content),
		Empty:            len(content) == 0,
	}
}
