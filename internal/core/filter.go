package core

import "strings"

// OperationTypeFilter selects which operation types a listing shows.
type OperationTypeFilter string

const (
	FilterAllOps     OperationTypeFilter = "all"
	FilterReceipts   OperationTypeFilter = "receipt"
	FilterDeliveries OperationTypeFilter = "delivery"
)

// FilterProducts applies an optional category constraint and a
// case-insensitive substring search over name, SKU and category.
// The "All" category disables the constraint; an empty term returns the
// (category-filtered) input unchanged.
func FilterProducts(products []Product, term, category string) []Product {
	filtered := products
	if category != "" && category != CategoryAll {
		filtered = make([]Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
	}

	if term == "" {
		return filtered
	}
	needle := strings.ToLower(term)
	out := make([]Product, 0, len(filtered))
	for _, p := range filtered {
		if containsFold(p.Name, needle) ||
			containsFold(p.SKU, needle) ||
			containsFold(p.Category, needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterOperations applies the type filter and then a case-insensitive
// substring search over reference, contact and status. An empty term
// returns the type-filtered input unchanged.
func FilterOperations(ops []Operation, term string, typeFilter OperationTypeFilter) []Operation {
	filtered := ops
	if typeFilter != "" && typeFilter != FilterAllOps {
		filtered = make([]Operation, 0, len(ops))
		for _, op := range ops {
			if strings.EqualFold(string(op.Type), string(typeFilter)) {
				filtered = append(filtered, op)
			}
		}
	}

	if term == "" {
		return filtered
	}
	needle := strings.ToLower(term)
	out := make([]Operation, 0, len(filtered))
	for _, op := range filtered {
		if containsFold(op.Reference, needle) ||
			containsFold(op.Contact, needle) ||
			containsFold(string(op.Status), needle) {
			out = append(out, op)
		}
	}
	return out
}

// FilterHistory applies a case-insensitive substring search over product,
// reference and the two location labels. An empty term returns the input
// unchanged.
func FilterHistory(history []MoveHistoryItem, term string) []MoveHistoryItem {
	if term == "" {
		return history
	}
	needle := strings.ToLower(term)
	out := make([]MoveHistoryItem, 0, len(history))
	for _, h := range history {
		if containsFold(h.Product, needle) ||
			containsFold(h.Reference, needle) ||
			containsFold(h.From, needle) ||
			containsFold(h.To, needle) {
			out = append(out, h)
		}
	}
	return out
}

// HistoryStage is one kanban column: a stage label and the transfers
// currently in that stage.
type HistoryStage struct {
	Stage string
	Items []MoveHistoryItem
}

// GroupHistoryByStage buckets history items by their stage label, with
// columns ordered by first appearance.
func GroupHistoryByStage(history []MoveHistoryItem) []HistoryStage {
	var stages []HistoryStage
	index := make(map[string]int)
	for _, h := range history {
		i, ok := index[h.Status]
		if !ok {
			i = len(stages)
			index[h.Status] = i
			stages = append(stages, HistoryStage{Stage: h.Status})
		}
		stages[i].Items = append(stages[i].Items, h)
	}
	return stages
}

// needle must already be lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
