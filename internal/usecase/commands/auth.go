package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/user"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/otp"
	"storefront/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidOTP             = errs.New("invalid or expired otp")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrOTPDeliveryFailed      = errs.New("otp delivery failed")
	ErrTokenGeneration        = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type OTPRepository interface {
	Create(ctx context.Context, email, code string, expiresAt time.Time) error
	FindValid(ctx context.Context, email, code string, now time.Time) (*OTPRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) error
}

// AuthResult is what a successful login or verification hands back to the
// handler, which turns the token into a cookie.
type AuthResult struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   user.Role
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) error
	VerifyOTP(ctx context.Context, req reqdto.VerifyOTPRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	otpRepo    OTPRepository
	mailer     Mailer
	jwtService *jwt.Service
	clock      clock.Clock
	otpTTL     time.Duration
}

func NewAuthCommands(
	userRepo UserRepository,
	otpRepo OTPRepository,
	mailer Mailer,
	jwtService *jwt.Service,
	clock clock.Clock,
	cfg config.OTPConfig,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		mailer:     mailer,
		jwtService: jwtService,
		clock:      clock,
		otpTTL:     cfg.TTL,
	}
}

// Register starts the sign-up flow: it issues a one-time code and mails it.
// The account is only created once VerifyOTP succeeds.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if _, err := a.userRepo.FindByEmail(ctx, email.Value()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := a.clock.Now()
	if err := a.otpRepo.DeleteExpired(ctx, now); err != nil {
		slog.Warn("failed to clear expired otps", "error", err.Error())
	}

	code, err := otp.Generate()
	if err != nil {
		return errs.Mark(err, ErrOTPDeliveryFailed)
	}

	if err := a.otpRepo.Create(ctx, email.Value(), code, now.Add(a.otpTTL)); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := a.mailer.SendOTP(ctx, email.Value(), code); err != nil {
		return errs.Mark(err, ErrOTPDeliveryFailed)
	}
	return nil
}

// VerifyOTP consumes the code, creates the account, and signs the caller in.
func (a *authCommandsImpl) VerifyOTP(ctx context.Context, req reqdto.VerifyOTPRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	record, err := a.otpRepo.FindValid(ctx, email.Value(), req.OTP, a.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(name.Value(), email, hash, user.RoleUser)
	userID, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Single use: the code is gone even if the client retries.
	if err := a.otpRepo.Delete(ctx, record.ID); err != nil {
		slog.Warn("failed to delete consumed otp", "otp_id", record.ID, "error", err.Error())
	}

	token, err := a.jwtService.GenerateToken(userID, email.Value(), user.RoleUser)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		UserID: userID,
		Name:   name.Value(),
		Email:  email.Value(),
		Role:   user.RoleUser,
		Token:  token,
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snap, err := a.userRepo.FindByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, snap.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		UserID: snap.ID,
		Name:   snap.Name,
		Email:  snap.Email,
		Role:   role,
		Token:  token,
	}, nil
}
