package usecase

import (
	"strings"

	"roofquote/internal/domain/entities"
)

// applicatorAreaThresholdM2 is the surface below which the brush-only kit is
// preferred over the roller combo.
const applicatorAreaThresholdM2 = 5.0

func normalizeHandle(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// ResolveRoleVariants builds the per-role priced variant tables from the
// operator's catalog entries and role assignments, and collects the
// coverage-rate overrides carried by the selected entries.
//
// Handle matching is case- and whitespace-insensitive. Variants are
// deduplicated by size, lowest price winning. The applicator role follows
// the assignment-order rule: with two mapped entries the first (brush-only)
// serves areas under the threshold and the second (roller combo) everything
// else; a single entry is always used. Roles with no assignment are absent
// from the table and contribute zero line items.
func ResolveRoleVariants(cfg entities.WidgetConfig, areaM2 float64) (entities.RoleVariantTable, map[entities.Role]float64) {
	byHandle := make(map[string][]entities.CatalogEntry, len(cfg.Entries))
	for _, e := range cfg.Entries {
		key := normalizeHandle(e.Handle)
		byHandle[key] = append(byHandle[key], e)
	}

	tables := entities.RoleVariantTable{}
	overrides := map[entities.Role]float64{}

	for _, role := range entities.Roles() {
		var selected []entities.CatalogEntry
		for _, handle := range cfg.Assignments[role] {
			selected = append(selected, byHandle[normalizeHandle(handle)]...)
		}
		if len(selected) == 0 {
			continue
		}

		if role == entities.RoleApplicator && len(selected) > 1 {
			if areaM2 < applicatorAreaThresholdM2 {
				selected = selected[:1]
			} else {
				selected = selected[1:2]
			}
		}

		for _, entry := range selected {
			tables.Add(role, entry.Variants)
			if entry.CoverageRateOverride != nil {
				overrides[role] = *entry.CoverageRateOverride
			}
		}
	}

	return tables, overrides
}
