package core

// Classify maps a product's quantity state to its stock status.
// The out-of-stock check runs first, so a zero stock level wins even
// when the reorder point is also zero. Total over all integer inputs.
func Classify(stockLevel, reorderPoint int) StockStatus {
	switch {
	case stockLevel <= 0:
		return OutOfStock
	case stockLevel <= reorderPoint:
		return LowStock
	default:
		return InStock
	}
}
