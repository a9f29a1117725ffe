package catalog

import (
	"strings"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

// DietFilter narrows products by vegetarian flag
type DietFilter string

const (
	DietAll    DietFilter = "all"
	DietVeg    DietFilter = "veg"
	DietNonVeg DietFilter = "nonveg"
)

// FilterState is the product listing filter input
type FilterState struct {
	SearchQuery string
	Categories  []domain.Category
	MinRating   float64
	Tags        []domain.Tag
	Diet        DietFilter
}

// Service serves the static product catalog and the promo table.
// Products are immutable reference data; callers must not mutate them.
type Service struct {
	products []*domain.Product
	byID     map[string]*domain.Product
	promos   map[string]int
}

// NewService builds the catalog from the static product set
func NewService() *Service {
	s := &Service{
		products: products,
		byID:     make(map[string]*domain.Product, len(products)),
		promos:   promoTable,
	}
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return s
}

// List returns all products in catalog order
func (s *Service) List() []*domain.Product {
	return s.products
}

// ByID looks up a single product
func (s *Service) ByID(id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	return p, nil
}

// ByCategory returns products in the given category, in catalog order
func (s *Service) ByCategory(cat domain.Category) []*domain.Product {
	out := make([]*domain.Product, 0)
	for _, p := range s.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, description, or tags contain the
// query as a case-insensitive substring
func (s *Service) Search(query string) []*domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.products
	}
	out := make([]*domain.Product, 0)
	for _, p := range s.products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies the full listing filter set
func (s *Service) Filter(f FilterState) []*domain.Product {
	result := s.Search(f.SearchQuery)
	out := make([]*domain.Product, 0, len(result))
	for _, p := range result {
		if len(f.Categories) > 0 && !containsCategory(f.Categories, p.Category) {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
			continue
		}
		if f.Diet == DietVeg && !p.IsVeg {
			continue
		}
		if f.Diet == DietNonVeg && p.IsVeg {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PromoTable returns the promo code table (uppercase code -> percent off)
func (s *Service) PromoTable() map[string]int {
	return s.promos
}

// LookupPromo resolves a promo code case-insensitively
func (s *Service) LookupPromo(code string) (int, bool) {
	pct, ok := s.promos[strings.ToUpper(strings.TrimSpace(code))]
	return pct, ok
}

func matchesQuery(p *domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(string(t)), q) {
			return true
		}
	}
	return false
}

func containsCategory(cats []domain.Category, c domain.Category) bool {
	for _, cat := range cats {
		if cat == c {
			return true
		}
	}
	return false
}

func hasAnyTag(p *domain.Product, tags []domain.Tag) bool {
	for _, want := range tags {
		for _, t := range p.Tags {
			if t == want {
				return true
			}
		}
	}
	return false
}
