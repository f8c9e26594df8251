//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	commandsmock "storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *commandsmock.MockUserRepository
	mockOTPRepo  *commandsmock.MockOTPRepository
	mockMailer   *commandsmock.MockMailer
	clock        *clock.MockClock
	jwtService   *jwt.Service
	auth         commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockOTPRepo = commandsmock.NewMockOTPRepository(s.mockCtrl)
	s.mockMailer = commandsmock.NewMockMailer(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Now())
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.auth = commands.NewAuthCommands(
		s.mockUserRepo, s.mockOTPRepo, s.mockMailer,
		s.jwtService, s.clock, config.OTPConfig{TTL: 10 * time.Minute},
	)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()
	req := builder.NewUserBuilder().BuildRegisterRequestDTO()

	s.Run("success: stores a code and mails it", func() {
		var sentCode string
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, notFound("user not found"))
		s.mockOTPRepo.EXPECT().DeleteExpired(gomock.Any(), s.clock.Now()).Return(nil)
		s.mockOTPRepo.EXPECT().Create(gomock.Any(), req.Email, gomock.Any(), s.clock.Now().Add(10*time.Minute)).
			DoAndReturn(func(_ context.Context, _, code string, _ time.Time) error {
				sentCode = code
				return nil
			})
		s.mockMailer.EXPECT().SendOTP(gomock.Any(), req.Email, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, code string) error {
				s.Equal(sentCode, code)
				s.Len(code, 6)
				return nil
			})

		err := s.auth.Register(ctx, req)
		s.Require().NoError(err)
	})

	s.Run("error: email already registered", func() {
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(builder.NewUserBuilder().BuildSnapshot(), nil)

		err := s.auth.Register(ctx, req)
		s.Require().ErrorIs(err, commands.ErrEmailAlreadyRegistered)
	})

	s.Run("error: mailer failure surfaces as delivery error", func() {
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, notFound("user not found"))
		s.mockOTPRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(nil)
		s.mockOTPRepo.EXPECT().Create(gomock.Any(), req.Email, gomock.Any(), gomock.Any()).Return(nil)
		s.mockMailer.EXPECT().SendOTP(gomock.Any(), req.Email, gomock.Any()).
			Return(errors.New("smtp unreachable"))

		err := s.auth.Register(ctx, req)
		s.Require().ErrorIs(err, commands.ErrOTPDeliveryFailed)
	})

	s.Run("error: invalid email is a validation failure", func() {
		err := s.auth.Register(ctx, builder.NewUserBuilder().WithEmail("not-an-email").BuildRegisterRequestDTO())
		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("expired-otp cleanup failure does not block registration", func() {
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, notFound("user not found"))
		s.mockOTPRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).
			Return(errors.New("db busy"))
		s.mockOTPRepo.EXPECT().Create(gomock.Any(), req.Email, gomock.Any(), gomock.Any()).Return(nil)
		s.mockMailer.EXPECT().SendOTP(gomock.Any(), req.Email, gomock.Any()).Return(nil)

		err := s.auth.Register(ctx, req)
		s.Require().NoError(err)
	})
}

// ================================================================================
// TestVerifyOTP
// ================================================================================

func (s *AuthCommandsTestSuite) TestVerifyOTP() {
	ctx := context.Background()
	ub := builder.NewUserBuilder()
	req := ub.BuildVerifyOTPRequestDTO("123456")
	record := &commands.OTPRecord{
		ID:        uuid.New(),
		Email:     ub.Email,
		Code:      "123456",
		ExpiresAt: s.clock.Now().Add(5 * time.Minute),
	}

	s.Run("success: creates the account and signs in", func() {
		userID := uuid.New()
		s.mockOTPRepo.EXPECT().FindValid(gomock.Any(), req.Email, "123456", gomock.Any()).
			Return(record, nil)
		s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (uuid.UUID, error) {
				s.Equal(req.Email, u.Email().Value())
				s.Equal(user.RoleUser, u.Role())
				s.NoError(password.ComparePassword(u.PasswordHash(), req.Password))
				return userID, nil
			})
		s.mockOTPRepo.EXPECT().Delete(gomock.Any(), record.ID).Return(nil)

		result, err := s.auth.VerifyOTP(ctx, req)
		s.Require().NoError(err)
		s.Equal(userID, result.UserID)
		s.Equal(user.RoleUser, result.Role)

		claims, err := s.jwtService.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(userID, claims.UserID)
	})

	s.Run("error: wrong or expired code", func() {
		s.mockOTPRepo.EXPECT().FindValid(gomock.Any(), req.Email, "123456", gomock.Any()).
			Return(nil, notFound("otp not found"))

		_, err := s.auth.VerifyOTP(ctx, req)
		s.Require().ErrorIs(err, commands.ErrInvalidOTP)
	})

	s.Run("error: duplicate account creation race", func() {
		s.mockOTPRepo.EXPECT().FindValid(gomock.Any(), req.Email, "123456", gomock.Any()).
			Return(record, nil)
		s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey))

		_, err := s.auth.VerifyOTP(ctx, req)
		s.Require().ErrorIs(err, commands.ErrEmailAlreadyRegistered)
	})

	s.Run("error: weak password is a validation failure", func() {
		bad := req
		bad.Password = ""

		_, err := s.auth.VerifyOTP(ctx, bad)
		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	ub := builder.NewUserBuilder()
	req := ub.BuildLoginRequestDTO()

	hash, err := password.HashPassword(ub.Password)
	s.Require().NoError(err)

	s.Run("success: returns the user and a valid token", func() {
		snap := ub.BuildSnapshot()
		snap.PasswordHash = hash
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(snap, nil)

		result, err := s.auth.Login(ctx, req)
		s.Require().NoError(err)
		s.Equal(snap.ID, result.UserID)
		s.Equal(user.RoleUser, result.Role)

		claims, err := s.jwtService.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(snap.ID, claims.UserID)
		s.Equal("user", claims.Role)
	})

	s.Run("error: unknown email", func() {
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, notFound("user not found"))

		_, err := s.auth.Login(ctx, req)
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		snap := ub.BuildSnapshot()
		snap.PasswordHash = hash
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(snap, nil)

		bad := req
		bad.Password = "wrong-password"

		_, err := s.auth.Login(ctx, bad)
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})
}
