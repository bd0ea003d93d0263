package usecase

import (
	"log"
	"math"

	"roofquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CoverageRates is the application-rate profile used to turn a surface area
// into required material volumes. The defaults model the
// "corrugated/painted" roof profile: sealant, sealer and geotextile apply to
// the coverage area (the 15% seam/crack sub-area), thermal coating to the
// full surface, and the rapid-cure additive scales with the sealant liters
// actually required.

type CoverageRates struct {
	CoverageAreaFraction     float64
	SealantPerM2             float64
	ThermalPerM2             float64
	SealerPerM2              float64
	GeotextilePerM2          float64
	RapidCurePerSealantLiter float64
}

func DefaultCoverageRates() CoverageRates {
	return CoverageRates{
		CoverageAreaFraction:     0.15,
		SealantPerM2:             1.5,
		ThermalPerM2:             0.5,
		SealerPerM2:              1.0 / 8.0,
		GeotextilePerM2:          1.0,
		RapidCurePerSealantLiter: 0.02,
	}
}

// withOverrides returns a copy of the rates with any per-role override
// applied. Overrides replace the role's rate, not the coverage fraction.
func (r CoverageRates) withOverrides(overrides map[entities.Role]float64) CoverageRates {
	out := r
	for role, rate := range overrides {
		switch role {
		case entities.RoleSealant:
			out.SealantPerM2 = rate
		case entities.RoleThermal:
			out.ThermalPerM2 = rate
		case entities.RoleSealer:
			out.SealerPerM2 = rate
		case entities.RoleGeotextile:
			out.GeotextilePerM2 = rate
		case entities.RoleRapidCure:
			out.RapidCurePerSealantLiter = rate
		}
	}
	return out
}

// roundUpLiters rounds a volume up to 2 decimal places. Decimal arithmetic
// keeps 0.1-style float artifacts out of the externally visible numbers.
func roundUpLiters(v float64) float64 {
	d := decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).Ceil().Div(decimal.NewFromInt(100))
	f, _ := d.Float64()
	return f
}

// RequiredVolumes computes the per-role required volume for an area, in the
// role's unit. Geotextile meters round up to whole units, everything else up
// to 2 decimals. The applicator kit carries no volume and is not included.
func RequiredVolumes(areaM2 float64, rates CoverageRates) map[entities.Role]float64 {
	if areaM2 <= 0 {
		return map[entities.Role]float64{}
	}

	coverageArea := areaM2 * rates.CoverageAreaFraction
	sealant := roundUpLiters(coverageArea * rates.SealantPerM2)

	return map[entities.Role]float64{
		entities.RoleSealant:    sealant,
		entities.RoleThermal:    roundUpLiters(areaM2 * rates.ThermalPerM2),
		entities.RoleSealer:     roundUpLiters(coverageArea * rates.SealerPerM2),
		entities.RoleGeotextile: math.Ceil(coverageArea * rates.GeotextilePerM2),
		entities.RoleRapidCure:  roundUpLiters(sealant * rates.RapidCurePerSealantLiter),
	}
}

// ComputeBreakdown derives the full bill of materials for an area: required
// volume per role, optimized pack combination against the role's variant
// table, plus one applicator kit when mapped. Roles that require volume but
// have no variant table are skipped; the widget still quotes the rest.
func ComputeBreakdown(areaM2 float64, tables entities.RoleVariantTable, overrides map[entities.Role]float64) entities.Breakdown {
	rates := DefaultCoverageRates().withOverrides(overrides)
	volumes := RequiredVolumes(areaM2, rates)

	b := entities.Breakdown{
		LineItems:     []entities.LineItem{},
		SealantLiters: volumes[entities.RoleSealant],
	}

	for _, role := range entities.Roles() {
		variants := tables[role]

		if role == entities.RoleApplicator {
			if len(variants) > 0 {
				v := variants[0]
				b.LineItems = append(b.LineItems, entities.LineItem{
					Role:     role,
					Size:     v.Size,
					Label:    variantLabel(role, v),
					Quantity: 1,
				})
				b.TotalItemCount++
			}
			continue
		}

		needed := volumes[role]
		if needed <= 0 {
			continue
		}
		if len(variants) == 0 {
			log.Printf("[quote][coverage] role=%s requires %.2f%s but has no catalog mapping; skipping", role, needed, role.Unit())
			continue
		}

		for _, pick := range OptimizeBuckets(needed, variants) {
			b.LineItems = append(b.LineItems, entities.LineItem{
				Role:     role,
				Size:     pick.Size,
				Label:    pickLabel(role, variants, pick.Size),
				Quantity: pick.Quantity,
			})
			b.TotalItemCount += pick.Quantity
		}
	}

	return b
}

func pickLabel(role entities.Role, variants []entities.Variant, size float64) string {
	for _, v := range variants {
		if v.Size == size {
			return variantLabel(role, v)
		}
	}
	return formatSizeLabel(size, role.Unit())
}

func variantLabel(role entities.Role, v entities.Variant) string {
	if v.Title != "" {
		return v.Title
	}
	return formatSizeLabel(v.Size, role.Unit())
}
