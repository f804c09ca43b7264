package usecase

// endDateLess orders public-timeline entries: nil end dates sort before
// all set ones, set ones sort descending. Equal cases report false so a
// stable sort preserves input order.
func endDateLess(a, b *string) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil {
		return true
	}
	if b == nil {
		return false
	}
	return *a > *b
}
