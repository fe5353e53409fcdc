package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
	"github.com/tunde/campusfound/internal/pkg/dberrors"
	"github.com/tunde/campusfound/internal/pkg/logger"
)

const userColumns = "id, username, email, password, first_name, last_name, phone_number, user_type, is_verified, is_active, date_joined"

// UserRepository handles user and student database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.PhoneNumber,
		&user.UserType, &user.IsVerified, &user.IsActive, &user.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUserWithStudent creates a user and its student profile in a single
// transaction. If the student insert fails, the user insert is rolled back so
// no orphaned account is left behind.
func (r *UserRepository) CreateUserWithStudent(ctx context.Context, user *models.User, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (username, email, password, first_name, last_name, phone_number, user_type, is_verified, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, date_joined
	`
	err = tx.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName,
		user.PhoneNumber, user.UserType, user.IsVerified, user.IsActive,
	).Scan(&user.ID, &user.DateJoined)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_lower_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_username_lower_key") {
			return apperrors.ErrUsernameTaken
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error inserting user")
		return fmt.Errorf("error creating user: %w", err)
	}

	student.UserID = user.ID
	_, err = tx.Exec(ctx, `
		INSERT INTO students (user_id, matric_no, department_id, level)
		VALUES ($1, $2, $3, $4)`,
		student.UserID, student.MatricNo, student.DepartmentID, student.Level,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_matric_no_key") {
			return apperrors.ErrMatricNoExists
		}
		logger.Error().Err(err).Str("matricNo", student.MatricNo).Msg("Error inserting student")
		return fmt.Errorf("error creating student: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit registration transaction: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("matricNo", student.MatricNo).Msg("User and student created")
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByIdentifier resolves a login identifier that may be a username or an
// email, matched case-insensitively. If duplicates exist it picks the lowest
// id, which keeps the choice deterministic; uniqueness is enforced at write
// time so this is a safety net only.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE LOWER(email) = $1 OR LOWER(username) = $1
		ORDER BY id
		LIMIT 1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error resolving login identifier")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered (case-insensitive)
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UsernameExists checks if a username is already taken (case-insensitive)
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}
	return exists, nil
}

// MatricNoExists checks if a matric number is already registered
func (r *UserRepository) MatricNoExists(ctx context.Context, matricNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE matric_no = $1)`, matricNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking matric number existence: %w", err)
	}
	return exists, nil
}

// GetStudentByUserID retrieves a student profile with its department
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `
		SELECT s.user_id, s.matric_no, s.department_id, s.level, d.id, d.name, d.code
		FROM students s
		JOIN departments d ON s.department_id = d.id
		WHERE s.user_id = $1
	`

	var student models.Student
	var department models.Department
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&student.UserID, &student.MatricNo, &student.DepartmentID, &student.Level,
		&department.ID, &department.Name, &department.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Department = &department
	return &student, nil
}

// SetVerified updates the user verification flag. The verification flow itself
// is external; only the outcome is recorded here.
func (r *UserRepository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	sql, args, err := r.sb.Update("users").
		Set("is_verified", verified).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build verify user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating user verification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
