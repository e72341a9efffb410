package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/repository"
	"github.com/Baaaki/gigflow/internal/utils"
	"github.com/Baaaki/gigflow/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	userRepo      *repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
	environment   string
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiration time.Duration, environment string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		environment:   environment,
	}
}

// IsProduction returns true if running in production environment
func (s *AuthService) IsProduction() bool {
	return s.environment == "production"
}

// TokenTTL is how long issued tokens (and their cookies) stay valid.
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtExpiration
}

// JWTSecret is shared with the auth middleware that verifies issued tokens.
func (s *AuthService) JWTSecret() string {
	return s.jwtSecret
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	logger.Log.Debug("Processing user registration",
		zap.String("email", email),
	)

	// 1. Validate input
	if err := s.validateRegisterInput(name, email, password); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	// 2. Check if email already exists
	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}
	if existingUser != nil {
		logger.Log.Warn("Email already exists",
			zap.String("email", email),
		)
		return nil, "", ErrEmailAlreadyExists
	}

	// 3. Hash password (Argon2id)
	hashStart := time.Now()
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}
	hashDuration := time.Since(hashStart)

	// 4. Create user
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// A concurrent registration can win the unique index after our check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Log.Error("Failed to create user in database",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}

	// 5. Generate JWT token
	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate JWT token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
		zap.Duration("hash_duration", hashDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	start := time.Now()
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, "", validationError("email and password are required")
	}

	// 1. Get user by email
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", email),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 2. Verify password
	verifyStart := time.Now()
	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}
	verifyDuration := time.Since(verifyStart)

	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 3. Upgrade hashes made with older argon2 settings; login still succeeds if this fails
	if utils.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user, password)
	}

	// 4. Generate JWT token
	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate JWT token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", ErrInternal
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.Duration("password_verify_duration", verifyDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

func (s *AuthService) rehash(ctx context.Context, user *models.User, password string) {
	hash, err := utils.HashPassword(password)
	if err == nil {
		err = s.userRepo.UpdatePasswordHash(ctx, user.ID, hash)
	}
	if err != nil {
		logger.Log.Warn("Failed to upgrade password hash",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return
	}
	user.PasswordHash = hash
	logger.Log.Info("Password hash upgraded", zap.String("user_id", user.ID.String()))
}

// CurrentUser loads the authenticated actor's own record.
func (s *AuthService) CurrentUser(ctx context.Context, actorID uuid.UUID) (*models.User, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		logger.Log.Error("Failed to load current user",
			zap.String("user_id", actorID.String()),
			zap.Error(err),
		)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) validateRegisterInput(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return validationError("all fields are required")
	}
	if len(name) > 100 {
		return validationError("name must be at most 100 characters")
	}

	if !emailRegex.MatchString(email) {
		return validationError("invalid email format")
	}
	if len(email) > 100 {
		return validationError("email too long")
	}

	if len(password) < 6 {
		return validationError("password must be at least 6 characters")
	}
	if len(password) > 128 {
		return validationError("password too long")
	}

	return nil
}
