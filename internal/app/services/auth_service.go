package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/repositories"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
	"github.com/tunde/campusfound/internal/pkg/auth"
	"github.com/tunde/campusfound/internal/pkg/validation"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo       *repositories.UserRepository
	tokenRepo      *repositories.TokenRepository
	departmentRepo *repositories.DepartmentRepository
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	departmentRepo *repositories.DepartmentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// RegisterStudent creates a student account. The matric number is checked
// against the chosen department's code, the phone number is normalized, and
// the user row plus student profile are written in one transaction.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterResponse, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if !models.IsValidLevel(req.Level) {
		return nil, apperrors.NewValidationError("level", "level must be one of 100, 200, 300, 400, 500")
	}

	department, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	matricNo, err := validation.NormalizeMatricNo(req.MatricNo, department.Code)
	if err != nil {
		return nil, err
	}

	phone := ""
	if strings.TrimSpace(req.PhoneNumber) != "" {
		phone, err = validation.NormalizePhone(req.PhoneNumber)
		if err != nil {
			return nil, err
		}
	}

	// Pre-checks give friendly errors; the unique indexes are what actually
	// guarantee uniqueness under concurrent registration.
	if exists, err := s.userRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if exists, err := s.userRepo.UsernameExists(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrUsernameTaken
	}
	if exists, err := s.userRepo.MatricNoExists(ctx, matricNo); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrMatricNoExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:    strings.TrimSpace(req.Username),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    hashedPassword,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: phone,
		UserType:    models.UserTypeStudent,
		IsVerified:  false,
		IsActive:    true,
	}
	student := &models.Student{
		MatricNo:     matricNo,
		DepartmentID: department.ID,
		Level:        req.Level,
	}

	if err := s.userRepo.CreateUserWithStudent(ctx, user, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("matricNo", matricNo).Msg("Student registered")
	return &dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		MatricNo: student.MatricNo,
	}, nil
}

// Login authenticates by username or email and issues a token pair. All
// credential failures collapse into ErrInvalidCredentials so the response
// does not reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CanAuthenticate() {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Password mismatch on login")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CanAuthenticate() {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.Delete(ctx, refreshToken)
	if errors.Is(err, apperrors.ErrTokenNotFound) {
		// Already revoked; logout stays idempotent
		return nil
	}
	return err
}

// LogoutAll revokes every refresh token the user holds, ending all sessions
func (s *AuthService) LogoutAll(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("All sessions revoked")
	return nil
}

// Profile returns the caller's account details, including the student profile
// for student accounts.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		UserType:    string(user.UserType),
		IsVerified:  user.IsVerified,
	}

	if user.UserType == models.UserTypeStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, err
			}
		} else {
			profile.Student = &dto.StudentProfile{
				MatricNo:       student.MatricNo,
				DepartmentID:   student.DepartmentID,
				DepartmentName: student.Department.Name,
				DepartmentCode: student.Department.Code,
				Level:          student.Level,
			}
		}
	}

	return profile, nil
}

// VerifyUser records that a user's identity has been confirmed by an admin
func (s *AuthService) VerifyUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.SetVerified(ctx, userID, true); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("User verified")
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	expiresAt := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("userType", string(user.UserType)).Msg("Tokens issued")
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		UserType:     string(user.UserType),
	}, nil
}
