package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/pkg/e"
)

type CategoryRepo struct {
	mu         sync.RWMutex
	categories map[int64]domain.Category
	nextID     int64
}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{
		categories: make(map[int64]domain.Category),
	}
}

// Create сохраняет категорию; имя должно быть уникальным.
func (m *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.categories {
		if c.Name == category.Name {
			return nil, e.Wrap(category.Name, e.ErrAlreadyExists)
		}
	}

	m.nextID++
	stored := *category
	stored.ID = m.nextID
	m.categories[stored.ID] = stored

	return &stored, nil
}

func (m *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	category, ok := m.categories[id]
	if !ok {
		return nil, e.ErrNotFound
	}

	return &category, nil
}

func (m *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		result = append(result, category)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
