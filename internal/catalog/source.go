package catalog

import (
	"context"
	"time"

	"combobox/internal/combobox"
	"combobox/internal/domain"
)

// Source looks up items for a query. Implementations may be slow; callers
// run Search off the UI loop.
type Source interface {
	Search(ctx context.Context, query string) ([]domain.Item, error)
}

// StaticSource searches an in-memory catalog after an optional delay,
// standing in for a remote search backend.
type StaticSource struct {
	items []domain.Item
	delay time.Duration
}

// NewStaticSource creates a source over items
func NewStaticSource(items []domain.Item, delay time.Duration) *StaticSource {
	return &StaticSource{
		items: items,
		delay: delay,
	}
}

// Search returns the items matching query
func (s *StaticSource) Search(ctx context.Context, query string) ([]domain.Item, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return combobox.Filter(s.items, query), nil
}
