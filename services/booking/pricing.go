package booking

// ComputeTotal multiplies the per-head price by the head count. Prices
// are integer currency units, so no rounding is involved. The total is
// always derived, never stored.
func ComputeTotal(unitPrice, headCount int) int {
	return unitPrice * headCount
}
