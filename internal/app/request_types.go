package app

// SaveProductRequest carries the edit form for the stock mutation
// transaction. An empty ID means "create": the transaction seeds a fresh
// draft and allocates an id. Nil fields leave the underlying value alone;
// numeric fields are free-text and coerced leniently (unparseable -> 0).
type SaveProductRequest struct {
	ID           string  `json:"id"`
	SKU          *string `json:"sku,omitempty"`
	Name         *string `json:"name,omitempty"`
	Category     *string `json:"category,omitempty"`
	StockLevel   *string `json:"stockLevel,omitempty"`
	Available    *string `json:"available,omitempty"`
	ReorderPoint *string `json:"reorderPoint,omitempty"`
	UnitPrice    *string `json:"unitPrice,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// UpdateProfileRequest carries the settings profile form.
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}
