package seed

import "strings"

// subsystemToTeam maps normalized legacy subsystem strings to team slugs.
var subsystemToTeam = map[string]string{
	"electronics":          "electronics-team",
	"electronics team":     "electronics-team",
	"aero":                 "aerodynamics-team",
	"aerodynamics":         "aerodynamics-team",
	"aerodynamics team":    "aerodynamics-team",
	"controls":             "controls-team",
	"controls team":        "controls-team",
	"wings":                "wings-25-26",
	"wings team":           "wings-25-26",
	"wings 25-26":          "wings-25-26",
	"fuselage":             "fuselage-25-26",
	"fuselage team":        "fuselage-25-26",
	"fuselage 25-26":       "fuselage-25-26",
	"cfd":                  "cfd-25-26",
	"cfd team":             "cfd-25-26",
	"cfd 25-26":            "cfd-25-26",
	"landing gear":         "landing-gear-25-26",
	"landing gear team":    "landing-gear-25-26",
	"landing gear 25-26":   "landing-gear-25-26",
	"structures":           "fuselage-25-26",
	"propulsion":           "electronics-team",
	"avionics":             "electronics-team",
}

// TeamSlugForSubsystem resolves a legacy free-text subsystem value to a
// team slug. The second result is false when the value has no mapping.
func TeamSlugForSubsystem(subsystem string) (string, bool) {
	slug, ok := subsystemToTeam[strings.ToLower(strings.TrimSpace(subsystem))]
	return slug, ok
}
