package entities

import (
	"sort"
	"strconv"
)

// Variant is one priced, sellable pack size of a catalog product. Size is in
// the role's unit (liters or meters); the applicator kit uses size 1.
//
// PlatformVariantID is the commerce platform's variant identifier when the
// operator connected one. It decides whether a checkout can use the direct
// cart-link path.

type Variant struct {
	Size              float64 `json:"size"`
	Price             float64 `json:"price"`
	Title             string  `json:"title"`
	PlatformVariantID string  `json:"platform_variant_id,omitempty"`
	ImageURL          string  `json:"image_url,omitempty"`
}

// SizeKey renders a variant size the way it is used as a lookup key
// (image maps, env var suffixes): no trailing zeros, "." replaced so the
// key is env-safe. 15 -> "15", 0.9 -> "0_9".
func SizeKey(size float64) string {
	s := strconv.FormatFloat(size, 'f', -1, 64)
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, '_')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// RoleVariantTable maps each resolved role to its variants, sorted by size
// descending and deduplicated by size (lowest price kept on collision).
// Roles the operator never mapped are absent.
type RoleVariantTable map[Role][]Variant

// Add merges variants into the role's list, applying the dedup rule.
func (t RoleVariantTable) Add(role Role, variants []Variant) {
	merged := append([]Variant{}, t[role]...)
	for _, v := range variants {
		replaced := false
		for i := range merged {
			if merged[i].Size == v.Size {
				if v.Price < merged[i].Price {
					merged[i] = v
				}
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, v)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Size > merged[j].Size })
	t[role] = merged
}

// CatalogEntry is one operator-configured product: a catalog handle assigned
// to a role, its priced variants, and an optional coverage-rate override
// that replaces the role's default application rate.
type CatalogEntry struct {
	Handle               string    `json:"handle"`
	Role                 Role      `json:"role"`
	DisplayName          string    `json:"display_name,omitempty"`
	CoverageRateOverride *float64  `json:"coverage_rate_override,omitempty"`
	Variants             []Variant `json:"variants"`
}

// RoleAssignments is the operator-supplied, open half of the role mapping:
// an ordered catalog-handle list per role. Order matters for the applicator
// role, where the first handle is the brush-only kit and the second the
// roller combo.
type RoleAssignments map[Role][]string

// Connection holds the operator's commerce-platform credential.
type Connection struct {
	ShopDomain  string `json:"shop_domain"`
	AccessToken string `json:"access_token"`
}

func (c Connection) Connected() bool {
	return c.ShopDomain != "" && c.AccessToken != ""
}

// WidgetConfig is everything the checkout pipeline reads about one widget
// owner: credential, currency, catalog entries and role assignments.
type WidgetConfig struct {
	OwnerID     string          `json:"owner_id"`
	Connection  Connection      `json:"connection"`
	Currency    string          `json:"currency"`
	Entries     []CatalogEntry  `json:"entries"`
	Assignments RoleAssignments `json:"assignments"`
}
