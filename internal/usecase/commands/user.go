package commands

import (
	"context"

	"movie-rental-api/internal/domain/user"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/pkg/jwt"
	"movie-rental-api/internal/pkg/password"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrUserValidation         = errs.New("user validation failed")
)

type RegisterResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterUserRequest) (*RegisterResult, error)
}

type userCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewUserCommands(uow shared.UnitOfWork, jwtService *jwt.Service) UserCommands {
	return &userCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Register creates a member account and logs it in immediately, mirroring the
// storefront sign-up flow.
func (u *userCommandsImpl) Register(ctx context.Context, req reqdto.RegisterUserRequest) (*RegisterResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	entity, err := user.NewUser(req.Name, email, hash, user.RoleMember)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	var userID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyRegistered
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := u.jwtService.GenerateAccessToken(userID, entity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &RegisterResult{
		UserID:      userID,
		AccessToken: accessToken,
	}, nil
}
