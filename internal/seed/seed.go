package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/auth"
)

// defaultAdminEmail is the login created on first startup. The password must
// be changed after the first login.
const (
	defaultAdminEmail    = "admin@dojang.app"
	defaultAdminPassword = "Admin123!"
)

// beltLadder is the curriculum seeded into the belts table. Minimum days are
// the conventional time-in-grade, recorded for reference only.
var beltLadder = []models.Belt{
	{Color: models.BeltBlanco, Order: 1, Description: "Cinturón blanco", MinimumDays: 0},
	{Color: models.BeltAmarillo, Order: 2, Description: "Cinturón amarillo", MinimumDays: 90},
	{Color: models.BeltNaranja, Order: 3, Description: "Cinturón naranja", MinimumDays: 90},
	{Color: models.BeltVerde, Order: 4, Description: "Cinturón verde", MinimumDays: 120},
	{Color: models.BeltAzul, Order: 5, Description: "Cinturón azul", MinimumDays: 120},
	{Color: models.BeltVioleta, Order: 6, Description: "Cinturón violeta", MinimumDays: 150},
	{Color: models.BeltMarron, Order: 7, Description: "Cinturón marrón", MinimumDays: 180},
	{Color: models.BeltRojo, Order: 8, Description: "Cinturón rojo", MinimumDays: 240},
	{Color: models.BeltNegro1Dan, Order: 9, Description: "Cinturón negro 1er Dan", MinimumDays: 365, IsBlackBelt: true, DanLevel: 1},
	{Color: models.BeltNegro2Dan, Order: 10, Description: "Cinturón negro 2º Dan", MinimumDays: 730, IsBlackBelt: true, DanLevel: 2},
	{Color: models.BeltNegro3Dan, Order: 11, Description: "Cinturón negro 3er Dan", MinimumDays: 1095, IsBlackBelt: true, DanLevel: 3},
	{Color: models.BeltNegro4Dan, Order: 12, Description: "Cinturón negro 4º Dan", MinimumDays: 1460, IsBlackBelt: true, DanLevel: 4},
	{Color: models.BeltNegro5Dan, Order: 13, Description: "Cinturón negro 5º Dan", MinimumDays: 1825, IsBlackBelt: true, DanLevel: 5},
	{Color: models.BeltNegro6Dan, Order: 14, Description: "Cinturón negro 6º Dan", MinimumDays: 2190, IsBlackBelt: true, DanLevel: 6},
}

// federations is the initial federation catalog with its coverage
var federations = []models.Federation{
	{
		Name:         "Federación Española de Taekwondo",
		Acronym:      "FET",
		Type:         models.FederationNational,
		Country:      "España",
		Website:      "https://www.fetaekwondo.net",
		MartialArts:  []models.MartialArt{models.ArtTaekwondo},
		FoundingYear: 1987,
		Active:       true,
	},
	{
		Name:         "World Taekwondo",
		Acronym:      "WT",
		Type:         models.FederationInternational,
		Country:      "Corea del Sur",
		Website:      "https://www.worldtaekwondo.org",
		MartialArts:  []models.MartialArt{models.ArtTaekwondo},
		FoundingYear: 1973,
		Active:       true,
	},
	{
		Name:         "Federación Española de Hapkido",
		Acronym:      "FEH",
		Type:         models.FederationNational,
		Country:      "España",
		MartialArts:  []models.MartialArt{models.ArtHapkido},
		FoundingYear: 1995,
		Active:       true,
	},
	{
		Name:         "International Federation of Muaythai Associations",
		Acronym:      "IFMA",
		Type:         models.FederationInternational,
		Country:      "Tailandia",
		Website:      "https://muaythai.sport",
		MartialArts:  []models.MartialArt{models.ArtMuayThai},
		FoundingYear: 1993,
		Active:       true,
	},
	{
		Name:         "Federación de Lucha y Artes Marciales",
		Acronym:      "FLCM",
		Type:         models.FederationRegional,
		Country:      "España",
		MartialArts:  []models.MartialArt{models.ArtGeneral},
		FoundingYear: 2001,
		Active:       true,
	},
}

// CreateDefaultData seeds the belt ladder, the federation catalog and the
// default admin user. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	beltRepo := repositories.NewBeltRepository(dbPool)
	federationRepo := repositories.NewFederationRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for i := range beltLadder {
		belt := beltLadder[i]
		if err := beltRepo.Upsert(ctx, &belt); err != nil {
			lgr.Error().Err(err).Str("belt", string(belt.Color)).Msg("Error seeding belt")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range federations {
		federation := federations[i]
		exists, err := federationRepo.NameExists(ctx, federation.Name)
		if err != nil {
			lgr.Error().Err(err).Str("federation", federation.Name).Msg("Error checking federation")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := federationRepo.Create(ctx, &federation); err != nil {
			lgr.Error().Err(err).Str("federation", federation.Name).Msg("Error seeding federation")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createDefaultAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

func createDefaultAdmin(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Email:    defaultAdminEmail,
		Password: hashedPassword,
		RoleType: models.RoleAdmin,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin user created. Change the password after first login.")
	return nil
}
