package entities

import (
	"errors"
	"strings"
)

// Role is the closed set of material categories a roof-coating quote is
// built from. Operator catalogs are mapped onto these roles; the set itself
// never grows at runtime (see RoleAssignments for the open half of the
// mapping).

type Role string

const (
	RoleSealant    Role = "sealant"
	RoleThermal    Role = "thermal"
	RoleSealer     Role = "sealer"
	RoleGeotextile Role = "geotextile"
	RoleRapidCure  Role = "rapid_cure"
	RoleApplicator Role = "applicator"
)

var ErrUnknownRole = errors.New("unknown role")

// Roles returns every role in quote order: volume-bearing materials first,
// the brush/roller kit last.
func Roles() []Role {
	return []Role{
		RoleSealant,
		RoleThermal,
		RoleSealer,
		RoleGeotextile,
		RoleRapidCure,
		RoleApplicator,
	}
}

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSealant:
		return RoleSealant, nil
	case RoleThermal:
		return RoleThermal, nil
	case RoleSealer:
		return RoleSealer, nil
	case RoleGeotextile:
		return RoleGeotextile, nil
	case RoleRapidCure:
		return RoleRapidCure, nil
	case RoleApplicator:
		return RoleApplicator, nil
	}
	return "", ErrUnknownRole
}

// Unit returns the pack unit suffix used in variant labels: liters for
// coatings and additives, meters for the geotextile roll, plain count for
// the applicator kit.
func (r Role) Unit() string {
	switch r {
	case RoleGeotextile:
		return "m"
	case RoleApplicator:
		return ""
	default:
		return "L"
	}
}
