package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/auth"
	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// AuthService covers registration, login and the bootstrap existence probe.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest, bearerToken string) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest, clientIP string) (dto.AuthResponse, error)
	AdminExists(ctx context.Context) (bool, error)
	ListTeachers(ctx context.Context) ([]dto.UserResponse, error)
}

type authService struct {
	users              repository.UserRepository
	tokens             *auth.TokenService
	throttle           *LoginThrottle
	validator          *validator.Validate
	teacherEmailDomain string
	logger             zerolog.Logger
}

// NewAuthService constructs the auth service. teacherEmailDomain is the
// mandatory suffix for teacher emails, e.g. "@campuscare.com".
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, throttle *LoginThrottle, validate *validator.Validate, teacherEmailDomain string, logger zerolog.Logger) AuthService {
	return &authService{
		users:              users,
		tokens:             tokens,
		throttle:           throttle,
		validator:          validate,
		teacherEmailDomain: teacherEmailDomain,
		logger:             logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register applies the bootstrap policy: while no admin exists the first
// account must be an admin and needs no token; afterwards only an
// authenticated admin may register accounts. The admin count is recomputed
// on every attempt rather than cached, since another admin could be created
// concurrently.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, bearerToken string) (dto.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AuthResponse{}, err
	}
	if !models.ValidRole(req.Role) {
		return dto.AuthResponse{}, failValidation("invalid role specified")
	}

	adminCount, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	if adminCount == 0 {
		if req.Role != models.RoleAdmin {
			return dto.AuthResponse{}, failValidation("first user must be an admin")
		}
	} else {
		if bearerToken == "" {
			return dto.AuthResponse{}, ErrAuthRequired
		}
		claims, err := s.tokens.Validate(bearerToken)
		if err != nil {
			return dto.AuthResponse{}, ErrTokenInvalid
		}
		caller, err := s.users.FindByID(ctx, claims.UserID)
		if err != nil || caller.Role != models.RoleAdmin {
			return dto.AuthResponse{}, ErrAdminOnly
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return dto.AuthResponse{}, failValidation("user already exists with this email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, err
	}

	if req.Role == models.RoleTeacher && !strings.HasSuffix(email, s.teacherEmailDomain) {
		return dto.AuthResponse{}, failValidation("teacher email must end with %s", s.teacherEmailDomain)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		Name:           req.Name,
		Email:          email,
		Password:       hashed,
		Role:           req.Role,
		Department:     strings.TrimSpace(req.Department),
		Phone:          strings.TrimSpace(req.Phone),
		Designation:    strings.TrimSpace(req.Designation),
		Specifications: strings.TrimSpace(req.Specifications),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return dto.AuthResponse{}, err
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("user registered")

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password collapse into the same ErrInvalidCredentials for the
// caller; the difference shows up only in the server log.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest, clientIP string) (dto.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AuthResponse{}, failValidation("please provide email and password")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !s.throttle.Allow(ctx, email, clientIP) {
		s.logger.Warn().Str("email", email).Str("ip", clientIP).Msg("login throttled")
		return dto.AuthResponse{}, ErrTooManyLoginAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info().Str("email", email).Msg("failed login attempt: unknown email")
			return dto.AuthResponse{}, ErrInvalidCredentials
		}
		return dto.AuthResponse{}, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Info().Str("email", email).Msg("failed login attempt: incorrect password")
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.throttle.Reset(ctx, email, clientIP)
	s.logger.Info().Str("email", user.Email).Msg("user logged in")

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *authService) AdminExists(ctx context.Context) (bool, error) {
	count, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *authService) ListTeachers(ctx context.Context) ([]dto.UserResponse, error) {
	teachers, err := s.users.ListByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, dto.NewUserResponse(teacher))
	}

	return responses, nil
}
