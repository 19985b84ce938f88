// Command subsystem-migrate backfills card team associations from the
// deprecated free-text subsystem field. Safe to re-run; it only touches
// cards with a subsystem and no team.
package main

import (
	"context"
	"fmt"
	"os"

	"teamboard/internal/config"
	"teamboard/internal/model"
	"teamboard/internal/repository"
	"teamboard/internal/seed"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	cfg := config.Load()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}

	ctx := context.Background()
	teamRepo := repository.NewTeamRepository(db)
	cardRepo := repository.NewCardRepository(db)

	teams, err := teamRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load teams")
	}
	log.Info().Int("teams", len(teams)).Msg("loaded teams")

	cards, err := cardRepo.ListLegacySubsystem(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load cards")
	}
	log.Info().Int("cards", len(cards)).Msg("cards to migrate")

	migrated, skipped := 0, 0
	for _, card := range cards {
		slug, ok := seed.TeamSlugForSubsystem(*card.Subsystem)
		if !ok {
			log.Warn().Str("subsystem", *card.Subsystem).Str("card", card.Title).Msg("no mapping, skipping")
			skipped++
			continue
		}

		team := findTeam(teams, slug)
		if team == nil {
			log.Warn().Str("slug", slug).Msg("mapped team not found, skipping")
			skipped++
			continue
		}

		if err := cardRepo.SetTeam(ctx, card.ID, team.ID); err != nil {
			log.Fatal().Err(err).Str("card", card.Title).Msg("failed to update card")
		}
		log.Info().Str("card", card.Title).Str("team", team.Name).Msg("migrated")
		migrated++
	}

	log.Info().Int("migrated", migrated).Int("skipped", skipped).Msg("migration complete")
}

func findTeam(teams []model.Team, slug string) *model.Team {
	for i := range teams {
		if teams[i].Slug == slug {
			return &teams[i]
		}
	}
	return nil
}
