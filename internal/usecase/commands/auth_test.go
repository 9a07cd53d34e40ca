//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pos-core/internal/infra"
	"pos-core/internal/pkg/jwt"
	"pos-core/internal/pkg/password"
	"pos-core/internal/usecase/commands"
	commandsmock "pos-core/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	operatorRepo *commandsmock.MockOperatorRepository
	useCase      commands.AuthCommands
	passwordHash string
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.operatorRepo = commandsmock.NewMockOperatorRepository(s.mockCtrl)
	s.useCase = commands.NewAuthCommands(s.operatorRepo, jwt.NewService("test-secret", time.Hour))

	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.passwordHash = hash
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) operatorSnapshot(active bool) *commands.OperatorSnapshot {
	return &commands.OperatorSnapshot{
		ID:       uuid.New(),
		Username: "cashier01",
		Role:     "cashier",
		IsActive: active,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: issues a token for valid credentials", func() {
		snapshot := s.operatorSnapshot(true)
		s.operatorRepo.EXPECT().FindByUsername(gomock.Any(), "cashier01").
			Return(snapshot, s.passwordHash, nil).Times(1)

		result, err := s.useCase.Login(s.ctx, "cashier01", "password123")

		s.Require().NoError(err)
		s.Equal(snapshot.ID, result.OperatorID)
		s.Equal("cashier", result.Role)
		s.NotEmpty(result.AccessToken)
	})

	s.Run("error: unknown username looks like a bad password", func() {
		s.operatorRepo.EXPECT().FindByUsername(gomock.Any(), "ghost").
			Return(nil, "", infra.WrapRepoErr("operator not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.Login(s.ctx, "ghost", "password123")

		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		s.operatorRepo.EXPECT().FindByUsername(gomock.Any(), "cashier01").
			Return(s.operatorSnapshot(true), s.passwordHash, nil).Times(1)

		_, err := s.useCase.Login(s.ctx, "cashier01", "wrong-password")

		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: deactivated operator", func() {
		s.operatorRepo.EXPECT().FindByUsername(gomock.Any(), "cashier01").
			Return(s.operatorSnapshot(false), s.passwordHash, nil).Times(1)

		_, err := s.useCase.Login(s.ctx, "cashier01", "password123")

		s.Require().ErrorIs(err, commands.ErrOperatorInactive)
	})
}
