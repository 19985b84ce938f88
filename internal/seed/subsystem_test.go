package seed_test

import (
	"testing"

	"teamboard/internal/seed"

	"github.com/stretchr/testify/assert"
)

func TestTeamSlugForSubsystem_KnownValues(t *testing.T) {
	tests := []struct {
		subsystem string
		slug      string
	}{
		{"electronics", "electronics-team"},
		{"Aerodynamics Team", "aerodynamics-team"},
		{"  controls  ", "controls-team"},
		{"WINGS", "wings-25-26"},
		{"fuselage 25-26", "fuselage-25-26"},
		{"CFD", "cfd-25-26"},
		{"Landing Gear", "landing-gear-25-26"},
		{"structures", "fuselage-25-26"},
		{"propulsion", "electronics-team"},
		{"avionics", "electronics-team"},
	}
	for _, tt := range tests {
		slug, ok := seed.TeamSlugForSubsystem(tt.subsystem)
		assert.True(t, ok, "expected mapping for %q", tt.subsystem)
		assert.Equal(t, tt.slug, slug)
	}
}

func TestTeamSlugForSubsystem_Unknown(t *testing.T) {
	for _, subsystem := range []string{"", "marketing", "not a team"} {
		slug, ok := seed.TeamSlugForSubsystem(subsystem)
		assert.False(t, ok)
		assert.Empty(t, slug)
	}
}

func TestDefaultTeams_SlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, team := range seed.DefaultTeams {
		assert.False(t, seen[team.Slug], "duplicate slug %q", team.Slug)
		seen[team.Slug] = true
	}
	assert.Len(t, seed.DefaultTeams, 7)
}

func TestSubsystemMappingsResolveToSeededTeams(t *testing.T) {
	slugs := make(map[string]bool)
	for _, team := range seed.DefaultTeams {
		slugs[team.Slug] = true
	}

	for _, subsystem := range []string{"electronics", "aero", "controls", "wings", "fuselage", "cfd", "landing gear"} {
		slug, ok := seed.TeamSlugForSubsystem(subsystem)
		assert.True(t, ok)
		assert.True(t, slugs[slug], "mapping for %q points at unseeded team %q", subsystem, slug)
	}
}
