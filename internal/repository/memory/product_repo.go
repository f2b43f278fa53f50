package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/pkg/e"
)

// ProductRepo хранит продукты в памяти продуктов для локального запуска и тестов.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		products: make(map[int64]domain.Product),
	}
}

func (m *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	stored := cloneProduct(product)
	stored.ID = m.nextID
	m.products[stored.ID] = stored

	res := cloneProduct(&stored)
	return &res, nil
}

func (m *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, ok := m.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}

	res := cloneProduct(&product)
	return &res, nil
}

// FindByDescription ищет продукты по вхождению подстроки (с учётом регистра), как LIKE в PostgreSQL.
func (m *ProductRepo) FindByDescription(ctx context.Context, fragment string) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Product, 0)
	for _, product := range m.sorted() {
		if strings.Contains(product.Description, fragment) {
			result = append(result, cloneProduct(&product))
		}
	}

	return result, nil
}

func (m *ProductRepo) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.sorted()
	total := int64(len(all))

	result := make([]domain.Product, 0, limit)
	for i := max(offset, 0); i < len(all) && len(result) < limit; i++ {
		result = append(result, cloneProduct(&all[i]))
	}

	return result, total, nil
}

func (m *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; !ok {
		return nil, e.ErrNotFound
	}

	stored := cloneProduct(product)
	m.products[product.ID] = stored

	res := cloneProduct(&stored)
	return &res, nil
}

func (m *ProductRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return e.ErrNotFound
	}

	delete(m.products, id)
	return nil
}

func (m *ProductRepo) sorted() []domain.Product {
	all := make([]domain.Product, 0, len(m.products))
	for _, product := range m.products {
		all = append(all, product)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// cloneProduct копирует продукт вместе с указателями, чтобы вызывающий код не делил состояние с хранилищем.
func cloneProduct(p *domain.Product) domain.Product {
	res := *p
	if p.Category != nil {
		category := *p.Category
		res.Category = &category
	}
	if p.UpdatedAt != nil {
		updatedAt := *p.UpdatedAt
		res.UpdatedAt = &updatedAt
	}

	return res
}
