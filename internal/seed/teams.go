package seed

import (
	"context"

	"teamboard/internal/model"
	"teamboard/internal/repository"
)

// DefaultTeam is one entry of the initial subsystem team roster.
type DefaultTeam struct {
	Name           string
	Slug           string
	DiscordChannel string
}

// DefaultTeams mirrors the org's Discord subsystem structure.
var DefaultTeams = []DefaultTeam{
	{Name: "Electronics Team", Slug: "electronics-team", DiscordChannel: "#electronics-team"},
	{Name: "Aerodynamics Team", Slug: "aerodynamics-team", DiscordChannel: "#aerodynamics-team"},
	{Name: "Controls Team", Slug: "controls-team", DiscordChannel: "#controls-team"},
	{Name: "Wings Team 25-26", Slug: "wings-25-26", DiscordChannel: "#wings-team-25-26"},
	{Name: "Fuselage Team 25-26", Slug: "fuselage-25-26", DiscordChannel: "#fuselage-team-25-26"},
	{Name: "CFD Team 25-26", Slug: "cfd-25-26", DiscordChannel: "#cfd-team-25-26"},
	{Name: "Landing Gear Team 25-26", Slug: "landing-gear-25-26", DiscordChannel: "#landing-gear-team-25-26"},
}

// Teams creates the default teams unless any team already exists.
// Returns the number of teams created.
func Teams(ctx context.Context, repo *repository.TeamRepository) (int, error) {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, t := range DefaultTeams {
		channel := t.DiscordChannel
		team := &model.Team{
			Name:           t.Name,
			Slug:           t.Slug,
			DiscordChannel: &channel,
		}
		if err := repo.Create(ctx, team); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
