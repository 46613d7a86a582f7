package gopaging

const (
	DefaultItemsPerPage  = 25
	DefaultMaxWindowSize = 7
	MaxItemsPerPage      = 100
)

// IsNormalizedItemsPerPageMax clamps a requested page size coming from an
// untrusted payload: non-positive values become DefaultItemsPerPage and values
// above maxItemsPerPage become maxItemsPerPage. The flag reports whether the
// value was kept unchanged.
func IsNormalizedItemsPerPageMax(itemsPerPage int, maxItemsPerPage int) (int, bool) {
	if itemsPerPage <= 0 {
		return DefaultItemsPerPage, false
	} else if itemsPerPage > maxItemsPerPage {
		return maxItemsPerPage, false
	}

	return itemsPerPage, true
}

func NormalizeItemsPerPageMax(itemsPerPage int, maxItemsPerPage int) int {
	ret, _ := IsNormalizedItemsPerPageMax(itemsPerPage, maxItemsPerPage)
	return ret
}

func NormalizeItemsPerPage(itemsPerPage int) int {
	return NormalizeItemsPerPageMax(itemsPerPage, MaxItemsPerPage)
}
