package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"phonetech/internal/models"
)

// Sort keys accepted from the filter form. Anything else falls back to
// SortNewest.
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortName      = "name"
	SortNewest    = "newest"
)

// Criteria carries the transient filter form state. Nil price bounds mean
// the bound is not applied.
type Criteria struct {
	Search   string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	SortKey  string
}

// modelCollator orders model names the way a locale-aware comparison would,
// rather than by raw bytes.
var modelCollator = collate.New(language.English)

// Apply derives a new filtered, sorted slice from phones. The input is never
// mutated; calling Apply twice with the same criteria yields the same order.
func Apply(phones []models.Phone, c Criteria) []models.Phone {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	matched := make([]models.Phone, 0, len(phones))
	for _, p := range phones {
		if !matchesSearch(p, search) {
			continue
		}
		if c.Brand != "" && p.Brand != c.Brand {
			continue
		}
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	sortPhones(matched, c.SortKey)
	return matched
}

func matchesSearch(p models.Phone, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Brand), search) ||
		strings.Contains(strings.ToLower(p.Model), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

func sortPhones(phones []models.Phone, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(phones, func(i, j int) bool {
			return phones[i].Price < phones[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(phones, func(i, j int) bool {
			return phones[i].Price > phones[j].Price
		})
	case SortName:
		sort.SliceStable(phones, func(i, j int) bool {
			return modelCollator.CompareString(phones[i].Model, phones[j].Model) < 0
		})
	default:
		// SortNewest and unrecognized keys: newest id first.
		sort.SliceStable(phones, func(i, j int) bool {
			return phones[i].ID > phones[j].ID
		})
	}
}
