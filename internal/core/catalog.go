package core

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ProductPatch carries the fields of an edit form. Nil fields leave the
// underlying value untouched when the patch is applied.
type ProductPatch struct {
	SKU          *string
	Name         *string
	Category     *string
	StockLevel   *int
	Available    *int
	ReorderPoint *int
	UnitPrice    *decimal.Decimal
	Status       *StockStatus
}

func (p ProductPatch) apply(dst *Product) {
	if p.SKU != nil {
		dst.SKU = *p.SKU
	}
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.StockLevel != nil {
		dst.StockLevel = *p.StockLevel
	}
	if p.Available != nil {
		dst.Available = *p.Available
	}
	if p.ReorderPoint != nil {
		dst.ReorderPoint = *p.ReorderPoint
	}
	if p.UnitPrice != nil {
		dst.UnitPrice = *p.UnitPrice
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

// CatalogService owns the live product catalog. It is the only write path
// into the catalog; every other component reads snapshots.
type CatalogService interface {
	// Snapshot returns the current ordered catalog. Saves replace the
	// backing slice as a whole, so a returned snapshot never observes a
	// later mutation.
	Snapshot() []Product

	// Get returns the product with the given id, if present.
	Get(id string) (Product, bool)

	// NewProductDraft seeds a blank draft with the sentinel empty id.
	// The seed is already consistent with Classify.
	NewProductDraft() Product

	// SaveProduct commits a draft with the edit-form patch applied.
	// A draft with an empty id takes the create path: a new numeric-string
	// id is allocated (max of all parseable ids plus one) and the status is
	// reclassified from the merged stock level and reorder point. A draft
	// with a non-empty id takes the update path: the stored record is
	// overlaid with the patch and the status is kept as the form set it,
	// without reclassification. A nil draft returns *ValidationError; an
	// update against an unknown id returns *NotFoundError.
	SaveProduct(draft *Product, patch ProductPatch) (Product, error)

	// Categories returns the distinct categories present in the catalog in
	// first-seen order, prefixed with the "All" sentinel.
	Categories() []string
}

type catalogService struct {
	products []Product
	now      func() time.Time
}

// NewCatalogService builds a catalog seeded with the given products.
// The seed slice is copied, so callers keep ownership of their input.
func NewCatalogService(seed []Product) CatalogService {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &catalogService{products: products, now: time.Now}
}

func (s *catalogService) Snapshot() []Product {
	return s.products
}

func (s *catalogService) Get(id string) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *catalogService) NewProductDraft() Product {
	return Product{
		ID:           "",
		SKU:          "",
		Name:         "",
		Category:     "General",
		StockLevel:   0,
		Available:    0,
		ReorderPoint: 10,
		UnitPrice:    decimal.Zero,
		Status:       OutOfStock,
		LastUpdated:  s.now().Format(dateLayout),
	}
}

func (s *catalogService) SaveProduct(draft *Product, patch ProductPatch) (Product, error) {
	if draft == nil {
		return Product{}, &ValidationError{Msg: "no active draft"}
	}

	today := s.now().Format(dateLayout)

	if draft.ID == "" {
		merged := *draft
		patch.apply(&merged)
		merged.ID = s.nextID()
		merged.LastUpdated = today
		merged.Status = Classify(merged.StockLevel, merged.ReorderPoint)

		next := make([]Product, len(s.products), len(s.products)+1)
		copy(next, s.products)
		s.products = append(next, merged)
		return merged, nil
	}

	idx := -1
	for i, p := range s.products {
		if p.ID == draft.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Product{}, &NotFoundError{ID: draft.ID}
	}

	merged := s.products[idx]
	patch.apply(&merged)
	merged.LastUpdated = today
	// The update path trusts the status the form carried; only the create
	// path reclassifies. Dashboard KPIs recompute from stock levels and
	// never read this field, so a stale badge stays a display concern.

	next := make([]Product, len(s.products))
	copy(next, s.products)
	next[idx] = merged
	s.products = next
	return merged, nil
}

// nextID allocates the next numeric-string id. Ids that fail to parse
// contribute zero, so the first id on an empty catalog is "1".
func (s *catalogService) nextID() string {
	max := 0
	for _, p := range s.products {
		n, err := strconv.Atoi(p.ID)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func (s *catalogService) Categories() []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
