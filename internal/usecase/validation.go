package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/pkg/e"
)

const (
	fieldPrice      = "preco"
	fieldCategoryID = "categoriaId"
	fieldTaxType    = "tipoTributacao"
	fieldTaxRate    = "aliquotaImposto"

	msgCategoryNotExists = "não existe"
	msgInvalidTaxRate    = "Aliquota imposto invalida"
	msgMustBePositive    = "deve ser maior que 0"
	msgMustNotBeNegative = "deve ser maior ou igual a 0"
	msgAmountOutOfRange  = "valor numérico fora do limite (<17 dígitos>,<2 dígitos> esperado)"
)

// Цена и ставка хранятся в NUMERIC(19,2).
const (
	amountScale     = 2
	amountIntDigits = 17
)

var amountLimit = decimal.New(1, amountIntDigits)

// RequestValidator проверяет входные запросы: сначала ограничения отдельных полей,
// затем существование категории и согласованность ставки с типом налога.
type RequestValidator struct {
	validate     *validator.Validate
	categoryRepo CategoryRepository
}

func NewRequestValidator(categoryRepo CategoryRepository) *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &RequestValidator{validate: v, categoryRepo: categoryRepo}
}

// ValidateProduct возвращает категорию, на которую ссылается запрос, или *ValidationError.
func (v *RequestValidator) ValidateProduct(ctx context.Context, req *ProductReq) (*domain.Category, error) {
	const op = "RequestValidator.ValidateProduct"

	verr := &ValidationError{}
	if err := v.validateStruct(req, verr); err != nil {
		return nil, e.Wrap(op, err)
	}

	checkAmount(verr, fieldPrice, req.Price, false)
	checkAmount(verr, fieldTaxRate, req.TaxRate, true)

	var category *domain.Category
	if !verr.has(fieldCategoryID) {
		c, err := v.categoryRepo.GetByID(ctx, req.CategoryID)
		switch {
		case errors.Is(err, e.ErrNotFound):
			verr.add(fieldCategoryID, msgCategoryNotExists)
		case err != nil:
			return nil, e.Wrap(op, err)
		default:
			category = c
		}
	}

	// проверка ставки разыменовывает тип и ставку, поэтому выполняется только если оба поля корректны
	if !verr.has(fieldTaxType) && !verr.has(fieldTaxRate) {
		if !req.TaxType.IsValidRate(*req.TaxRate) {
			verr.add(fieldTaxRate, msgInvalidTaxRate)
		}
	}

	if len(verr.Errors) > 0 {
		return nil, verr
	}

	return category, nil
}

// ValidateCategory проверяет запрос на создание категории.
func (v *RequestValidator) ValidateCategory(req *CategoryReq) error {
	verr := &ValidationError{}
	if err := v.validateStruct(req, verr); err != nil {
		return err
	}

	if len(verr.Errors) > 0 {
		return verr
	}

	return nil
}

// validateStruct добавляет ошибки полей в verr; возвращает ошибку только при неверном использовании валидатора.
func (v *RequestValidator) validateStruct(req any, verr *ValidationError) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		verr.add(fe.Field(), fieldMessage(fe))
	}

	return nil
}

// checkAmount сравнивает значение точно, без перевода в float64, и проверяет,
// что оно помещается в колонку без округления.
func checkAmount(verr *ValidationError, field string, d *decimal.Decimal, allowZero bool) {
	if d == nil || verr.has(field) {
		return
	}

	switch {
	case allowZero && d.IsNegative():
		verr.add(field, msgMustNotBeNegative)
	case !allowZero && !d.IsPositive():
		verr.add(field, msgMustBePositive)
	case !d.Equal(d.Round(amountScale)) || d.Abs().GreaterThanOrEqual(amountLimit):
		verr.add(field, msgAmountOutOfRange)
	}
}

// fieldMessage переводит тег валидатора в сообщение для клиента.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "não deve estar em branco"
	case "required":
		return "não deve ser nulo"
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "max":
		return fmt.Sprintf("tamanho deve ser no máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um dos valores: %s", fe.Param())
	default:
		return "valor inválido"
	}
}
