package domain

import "time"

// Category описывает категорию продукта
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string, now time.Time) *Category {
	return &Category{
		Name:      name,
		CreatedAt: now,
	}
}
