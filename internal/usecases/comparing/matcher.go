package comparing

import (
	"strings"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// NormalizeIdentity folds a vehicle identity fragment for exact,
// case-insensitive comparison: lowercased, trimmed, inner whitespace
// collapsed.
func NormalizeIdentity(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MatchVehicle resolves a scraped (manufacturer, model, variant) against the
// vehicle catalogue. Matching is exact on the normalized identity; a variant
// is only compared when the listing carries one. Ambiguity (multiple
// candidates, or a manufacturer-only partial) returns no match rather than a
// guess, and the caller surfaces the row as unmatched.
func MatchVehicle(candidates []*domain.Vehicle, manufacturer, model string, variant *string) *domain.Vehicle {
	manufacturer = NormalizeIdentity(manufacturer)
	model = NormalizeIdentity(model)

	if manufacturer == "" || model == "" {
		return nil
	}

	matches := make([]*domain.Vehicle, 0, 1)
	for _, v := range candidates {
		if NormalizeIdentity(v.Manufacturer) != manufacturer {
			continue
		}
		if NormalizeIdentity(v.Model) != model {
			continue
		}
		if variant != nil && NormalizeIdentity(*variant) != "" &&
			NormalizeIdentity(v.Variant) != NormalizeIdentity(*variant) {
			continue
		}
		matches = append(matches, v)
	}

	if len(matches) != 1 {
		return nil
	}

	return matches[0]
}
