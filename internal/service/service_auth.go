package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/config"
	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	userRepository store.UserRepository
	auditService   AuditService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration

	bcryptCost        int
	passwordMinLength int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, auditService AuditService, cfg config.Security, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		auditService:      auditService,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		accessTokenTTL:    cfg.AccessTokenTTL,
		refreshTokenTTL:   cfg.RefreshTokenTTL,
		bcryptCost:        cfg.BcryptCost,
		passwordMinLength: cfg.PasswordMinLength,
		logger:            logger,
	}
}

// Register creates a new user account with the viewer role.
//
// The password is validated against the account policy and stored as a
// bcrypt hash. Returns the persisted user or:
//   - a [models.ErrValidation]-wrapped error when the payload is invalid;
//   - [store.ErrUserAlreadyExists] when the username or email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(a.passwordMinLength); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		FullName:       req.FullName,
		Role:           models.RoleViewer,
		DepartmentID:   req.DepartmentID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration ended with error")
		return models.User{}, fmt.Errorf("user registration ended with error: %w", err)
	}

	a.auditService.Record(ctx, models.AuditActionCreate, models.AuditResourceUser, registered.ID.String(),
		map[string]any{"username": registered.Username})

	return registered, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
//
// Returns [ErrInvalidCredentials] for an unknown username or a wrong
// password and [ErrUserInactive] for a deactivated account. The two
// credential failures are indistinguishable to the caller on purpose.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	user, err := a.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("error finding user during login")
		return models.User{}, models.TokenPair{}, fmt.Errorf("login ended with error: %w", err)
	}

	if err := utils.VerifyPassword(user.HashedPassword, req.Password); err != nil {
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, models.TokenPair{}, ErrUserInactive
	}

	pair, err := a.issueTokenPair(user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("error issuing token pair")
		return models.User{}, models.TokenPair{}, fmt.Errorf("issuing token pair: %w", err)
	}

	if err := a.userRepository.UpdateLastLogin(ctx, user.ID); err != nil {
		// a stale last_login stamp is not worth failing the login
		log.Err(err).Str("username", req.Username).Msg("error updating last login")
	}

	a.auditService.Record(ctx, models.AuditActionLogin, models.AuditResourceUser, user.ID.String(), nil)

	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
//
// The account is looked up again so deactivation and role changes take
// effect on the next refresh. Returns [ErrWrongTokenType] when an access
// token is presented and [ErrTokenIsExpired] when the token is stale.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, refreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}
	if token.TokenType != models.TokenTypeRefresh {
		return models.TokenPair{}, ErrWrongTokenType
	}

	user, err := a.userRepository.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("error finding user during token refresh")
		return models.TokenPair{}, fmt.Errorf("token refresh ended with error: %w", err)
	}
	if !user.IsActive {
		return models.TokenPair{}, ErrUserInactive
	}

	pair, err := a.issueTokenPair(user)
	if err != nil {
		log.Err(err).Msg("error issuing token pair during refresh")
		return models.TokenPair{}, fmt.Errorf("issuing token pair: %w", err)
	}

	return pair, nil
}

// ParseToken validates the signature, issuer and lifetime of tokenString
// and returns the decoded token. Expired tokens map to [ErrTokenIsExpired].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("error validating token")
		return models.Token{}, fmt.Errorf("validating token: %w", err)
	}

	return token, nil
}

// ChangePassword verifies the current password and stores a bcrypt hash of
// the new one. Returns [ErrInvalidCredentials] on a wrong current password.
func (a *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := req.Validate(a.passwordMinLength); err != nil {
		return err
	}

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error finding user during password change")
		return fmt.Errorf("password change ended with error: %w", err)
	}

	if err := utils.VerifyPassword(user.HashedPassword, req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("error hashing new password")
		return fmt.Errorf("hashing password: %w", err)
	}

	user.HashedPassword = hash
	if _, err := a.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Msg("error storing new password")
		return fmt.Errorf("password change ended with error: %w", err)
	}

	a.auditService.Record(ctx, models.AuditActionUpdate, models.AuditResourceUser, userID.String(),
		map[string]any{"password_changed": true})

	return nil
}

func (a *authService) issueTokenPair(user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role,
		models.TokenTypeAccess, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("generating access token: %w", err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role,
		models.TokenTypeRefresh, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("generating refresh token: %w", err)
	}

	return models.TokenPair{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
		TokenType:    "bearer",
		ExpiresIn:    int64(a.accessTokenTTL.Seconds()),
	}, nil
}
