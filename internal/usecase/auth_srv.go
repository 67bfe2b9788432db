package usecase

import (
	"context"
	"errors"
	"time"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/dto/response"
	"bookstore-backend/internal/mail"
	"bookstore-backend/internal/otp"
	"bookstore-backend/pkg/hash"
	"bookstore-backend/pkg/tokens"
	"bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string, role entity.UserRole) (*response.UserResponse, error)
	Login(ctx context.Context, email, password string) (*response.AuthResponse, error)
	ForgetPassword(ctx context.Context, email string) (bool, error)
	ResetPasswordWithOtp(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	repo   *repository.Repository
	issuer *otp.Issuer
	mailer mail.Sender
	jwtCfg utils.JWTConfig
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, issuer *otp.Issuer, mailer mail.Sender, jwtCfg utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		mailer: mailer,
		jwtCfg: jwtCfg,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (as *authService) Register(ctx context.Context, firstName, lastName, email, password string, role entity.UserRole) (*response.UserResponse, error) {
	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		as.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := as.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	as.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", email),
		zap.String("role", string(role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Login verifies the credentials and issues a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (as *authService) Login(ctx context.Context, email, password string) (*response.AuthResponse, error) {
	user, err := as.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !hash.VerifyPassword(password, user.PasswordHash) {
		as.log.Warn("Login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	expiry := time.Duration(as.jwtCfg.ExpiryHours) * time.Hour
	token, err := tokens.GenerateToken(user.ID, user.Email, string(user.Role), []byte(as.jwtCfg.Secret), expiry)
	if err != nil {
		as.log.Error("Failed to sign token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	as.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return &response.AuthResponse{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(expiry),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}, nil
}

// ForgetPassword issues a one-time code and mails it to the account. It
// reports false without error for unknown emails and delivery failures, so
// the HTTP layer can answer uniformly without leaking which emails exist.
func (as *authService) ForgetPassword(ctx context.Context, email string) (bool, error) {
	user, err := as.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		as.log.Warn("Password reset for unknown email", zap.String("email", email))
		return false, nil
	}

	code, err := as.issuer.Issue(ctx, email)
	if err != nil {
		return false, err
	}

	if err := as.mailer.SendOTP(ctx, email, code); err != nil {
		as.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return false, nil
	}

	return true, nil
}

// ResetPasswordWithOtp trades a valid code for a new password. The code is
// consumed whether or not it matched.
func (as *authService) ResetPasswordWithOtp(ctx context.Context, email, code, newPassword string) error {
	valid, err := as.issuer.Validate(ctx, email, code)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidOTP
	}

	passwordHash, err := hash.HashPassword(newPassword)
	if err != nil {
		as.log.Error("Failed to hash password", zap.Error(err))
		return err
	}

	if err := as.repo.User.UpdatePassword(ctx, email, passwordHash); err != nil {
		return err
	}

	if err := as.issuer.Remove(ctx, email); err != nil {
		as.log.Warn("Failed to clear consumed OTP", zap.Error(err), zap.String("email", email))
	}

	as.log.Info("Password reset completed", zap.String("email", email))
	return nil
}
