package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/repository/pgdb/converter"
	"github.com/treinamento/produtos-service/pkg/e"
	"github.com/treinamento/produtos-service/pkg/tr"
)

const selectProduct = `
	SELECT
		p.id, p.description, p.price, p.tax_type, p.tax_rate,
		p.category_id, c.name, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет новый продукт и возвращает его с присвоенным идентификатором и значениями, записанными в БД.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (description, price, tax_type, tax_rate, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, price, tax_rate;
	`

	if err := tx.QueryRow(ctx, query,
		model.Description,
		model.Price,
		model.TaxType,
		model.TaxRate,
		model.CategoryID,
		model.CreatedAt,
	).Scan(&model.ID, &model.Price, &model.TaxRate); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetByID возвращает продукт с именем категории. Внутри транзакции строка блокируется до её завершения.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := selectProduct + ` WHERE p.id = $1`
	if _, err := tr.TxFromCtx(ctx); err == nil {
		query += ` FOR UPDATE OF p`
	}

	model, err := scanProduct(conn(ctx, p.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// FindByDescription возвращает продукты, описание которых содержит fragment (с учётом регистра).
func (p *ProductRepo) FindByDescription(ctx context.Context, fragment string) ([]domain.Product, error) {
	query := selectProduct + `
		WHERE p.description LIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY p.id
	`

	models, err := p.queryProducts(ctx, query, escapeLike(fragment))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// List возвращает срез продуктов по offset/limit и общее количество записей.
func (p *ProductRepo) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var total int64
	if err := conn(ctx, p.pool).QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := selectProduct + `
		ORDER BY p.id
		LIMIT $1 OFFSET $2
	`

	models, err := p.queryProducts(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), total, nil
}

// Update перезаписывает изменяемые поля продукта.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET description = $2,
			price = $3,
			tax_type = $4,
			tax_rate = $5,
			category_id = $6,
			updated_at = $7
		WHERE id = $1
		RETURNING price, tax_rate
	`

	if err := tx.QueryRow(ctx, query,
		model.ID,
		model.Description,
		model.Price,
		model.TaxType,
		model.TaxRate,
		model.CategoryID,
		model.UpdatedAt,
	).Scan(&model.Price, &model.TaxRate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	return nil
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]converter.ProductModel, error) {
	rows, err := conn(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]converter.ProductModel, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	if err := row.Scan(
		&model.ID, &model.Description, &model.Price, &model.TaxType, &model.TaxRate,
		&model.CategoryID, &model.CategoryName, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &model, nil
}
