package commands

import (
	"context"

	"pos-core/internal/domain/operator"
	"pos-core/internal/infra"
	"pos-core/internal/pkg/errs"
	"pos-core/internal/pkg/jwt"
	"pos-core/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrOperatorInactive   = errs.New("operator inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	OperatorID  uuid.UUID
	Username    string
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	operatorRepo OperatorRepository
	jwtService   *jwt.Service
}

func NewAuthCommands(operatorRepo OperatorRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		operatorRepo: operatorRepo,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	snapshot, hashedPassword, err := a.operatorRepo.FindByUsername(ctx, username)
	if err != nil {
		// Same error as a password mismatch to prevent operator enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if !snapshot.IsActive {
		return nil, ErrOperatorInactive
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := operator.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	accessToken, err := a.jwtService.GenerateToken(snapshot.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		OperatorID:  snapshot.ID,
		Username:    snapshot.Username,
		Role:        role.String(),
		AccessToken: accessToken,
	}, nil
}
