package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")

	// Ошибки доменной модели продукта
	ErrDescriptionRequired = fmt.Errorf("product description is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrInvalidTaxType      = fmt.Errorf("invalid tax type")
	ErrNegativeTaxRate     = fmt.Errorf("tax rate must not be negative")
	ErrInvalidTaxRate      = fmt.Errorf("tax rate is not valid for tax type")
	ErrCategoryRequired    = fmt.Errorf("category is required")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrValidation       = fmt.Errorf("validation error")
	ErrInvalidID        = fmt.Errorf("invalid id")
	ErrInvalidPage      = fmt.Errorf("invalid page parameters")
	ErrMalformedBody    = fmt.Errorf("malformed request body")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// 409 Conflict
	ErrAlreadyExists = fmt.Errorf("already exists")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
