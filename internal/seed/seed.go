package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/tunde/campusfound/internal/app/models"
	appRepos "github.com/tunde/campusfound/internal/app/repositories"
	"github.com/tunde/campusfound/internal/config"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
	"github.com/tunde/campusfound/internal/pkg/auth"
)

// defaultDepartments seeds the registration form; matric numbers embed these
// codes so they must exist before the first registration.
var defaultDepartments = []appModels.Department{
	{Name: "Computer Science", Code: "CSC"},
	{Name: "Cyber Security", Code: "CYS"},
	{Name: "Software Engineering", Code: "SEN"},
	{Name: "Information Technology", Code: "IFT"},
	{Name: "Electrical Engineering", Code: "EEE"},
	{Name: "Mechanical Engineering", Code: "MEE"},
}

// CreateDefaultData creates the default departments and, when configured, the
// initial admin account. Existing rows are left untouched so seeding is safe
// to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (departments, admin account)...")
	var finalErr error

	for _, d := range defaultDepartments {
		dept := d
		err := departmentRepo.Create(ctx, &dept)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("code", d.Code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createAdminUser(ctx, userRepo, dbPool, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createAdminUser creates the initial administrator account when credentials
// are configured and no account with that username exists yet.
func createAdminUser(ctx context.Context, userRepo *appRepos.UserRepository, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Debug().Msg("Admin credentials not configured, skipping admin seeding")
		return nil
	}

	exists, err := userRepo.UsernameExists(ctx, cfg.Admin.Username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing admin account")
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO users (username, email, password, first_name, last_name, user_type, is_verified, is_active)
		VALUES ($1, $2, $3, 'Campus', 'Admin', 'admin', TRUE, TRUE)`,
		cfg.Admin.Username, cfg.Admin.Email, hashedPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("username", cfg.Admin.Username).Msg("Admin account created")
	return nil
}
