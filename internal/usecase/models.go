package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/pkg/e"
)

// PRODUCT USECASE

// ProductReq содержит входные данные для создания или обновления продукта.
// Имена полей в json-тегах используются и как имена полей в ошибках валидации.
type ProductReq struct {
	Description string           `json:"descricao" validate:"notblank"`
	Price       *decimal.Decimal `json:"preco" validate:"required"`
	TaxType     domain.TaxType   `json:"tipoTributacao" validate:"required,oneof=TRIBUTAVEL ISENTO"`
	TaxRate     *decimal.Decimal `json:"aliquotaImposto" validate:"required"`
	CategoryID  int64            `json:"categoriaId" validate:"gt=0"`
}

// ToProduct собирает продукт из запроса, уже прошедшего валидацию, и найденной категории.
func (r *ProductReq) ToProduct(category *domain.Category, now time.Time) (*domain.Product, error) {
	return domain.NewProduct(r.Description, r.price(), r.TaxType, r.taxRate(), category, now)
}

func (r *ProductReq) price() decimal.Decimal {
	if r.Price == nil {
		return decimal.Zero
	}
	return *r.Price
}

func (r *ProductReq) taxRate() decimal.Decimal {
	if r.TaxRate == nil {
		return decimal.Zero
	}
	return *r.TaxRate
}

// CategoryReq описывает запрос на создание категории.
type CategoryReq struct {
	Name string `json:"nome" validate:"notblank,max=100"`
}

// PageReq задаёт параметры постраничной выборки (номер страницы начинается с нуля).
type PageReq struct {
	Page int
	Size int
}

func (r PageReq) Offset() int {
	return r.Page * r.Size
}

// Page содержит страницу результатов.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

func (p *Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p *Page[T]) IsFirst() bool {
	return p.Number == 0
}

func (p *Page[T]) IsLast() bool {
	return p.Number+1 >= p.TotalPages()
}

// FieldError описывает ошибку валидации одного поля запроса.
type FieldError struct {
	FieldName string
	Message   string
}

// ValidationError содержит список ошибок валидации полей.
type ValidationError struct {
	Errors []FieldError
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Errors))
	for _, fe := range v.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.FieldName, fe.Message))
	}
	return fmt.Sprintf("%s: %s", e.ErrValidation.Error(), strings.Join(parts, "; "))
}

func (v *ValidationError) Unwrap() error {
	return e.ErrValidation
}

func (v *ValidationError) add(field, message string) {
	v.Errors = append(v.Errors, FieldError{FieldName: field, Message: message})
}

func (v *ValidationError) has(field string) bool {
	for _, fe := range v.Errors {
		if fe.FieldName == field {
			return true
		}
	}
	return false
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "produto.criado"
	ProductUpdated OutboxEventType = "produto.atualizado"
	ProductDeleted OutboxEventType = "produto.removido"
)

// OutboxEvent описывает событие об изменении продукта, сохраняемое в одной транзакции с самим изменением.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ProductEventPayload задаёт тело сообщения, публикуемого в Kafka.
type ProductEventPayload struct {
	EventID    string           `json:"eventId"`
	EventType  OutboxEventType  `json:"eventType"`
	OccurredAt time.Time        `json:"occurredAt"`
	ProductID  int64            `json:"produtoId"`
	Product    *ProductSnapshot `json:"produto,omitempty"`
}

// ProductSnapshot фиксирует состояние продукта на момент события.
type ProductSnapshot struct {
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	TaxType     domain.TaxType  `json:"tipoTributacao"`
	TaxRate     decimal.Decimal `json:"aliquotaImposto"`
	CategoryID  int64           `json:"categoriaId"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	ProductID int64
	EventType OutboxEventType
	Payload   []byte
}

// MAPPERS

func NewWriteRawMessageReq(productID int64, eventType OutboxEventType, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		EventType: eventType,
		Payload:   payload,
	}
}

func NewPageReq(page, size int) *PageReq {
	return &PageReq{Page: page, Size: size}
}

func NewPage[T any](content []T, req *PageReq, total int64) *Page[T] {
	return &Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
	}
}

func NewProductSnapshot(p *domain.Product) *ProductSnapshot {
	return &ProductSnapshot{
		Description: p.Description,
		Price:       p.Price,
		TaxType:     p.TaxType,
		TaxRate:     p.TaxRate,
		CategoryID:  p.CategoryID(),
	}
}
