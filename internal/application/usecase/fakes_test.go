package usecase_test

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/inventario/internal/domain/entity"
)

// memRepo es un ProductRepository en memoria con la semántica del almacén real.
type memRepo struct {
	nextID   int64
	products []*entity.Product
	err      error
}

func (m *memRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	cp := *p
	cp.ID = m.nextID
	m.products = append(m.products, &cp)
	return cp.ID, nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo) FindByID(ctx context.Context, id int64) ([]*entity.Product, error) {
	p, err := m.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return []*entity.Product{p}, nil
}

func (m *memRepo) List(_ context.Context) ([]*entity.Product, error) {
	return m.filter(func(*entity.Product) bool { return true })
}

func (m *memRepo) Update(_ context.Context, p *entity.Product) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i, cur := range m.products {
		if cur.ID == p.ID {
			cp := *p
			m.products[i] = &cp
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i, cur := range m.products {
		if cur.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memRepo) SearchByName(_ context.Context, text string) ([]*entity.Product, error) {
	return m.filter(func(p *entity.Product) bool { return strings.Contains(p.Name, text) })
}

func (m *memRepo) SearchByCategory(_ context.Context, text string) ([]*entity.Product, error) {
	return m.filter(func(p *entity.Product) bool { return strings.Contains(p.Category, text) })
}

func (m *memRepo) ListLowStock(_ context.Context, limit int) ([]*entity.Product, error) {
	return m.filter(func(p *entity.Product) bool { return p.Quantity <= limit })
}

func (m *memRepo) Count(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.products)), nil
}

func (m *memRepo) Close() error { return nil }

func (m *memRepo) filter(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Product
	for _, p := range m.products {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

var errStore = errors.New("disco lleno")
