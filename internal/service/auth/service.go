package auth

import (
	"context"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	"github.com/feliciafavrholdt/vetlocator-api/pkg/auth"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
	"github.com/feliciafavrholdt/vetlocator-api/pkg/security"
)

type AuthServicer interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	ValidateToken(ctx context.Context, token string) (*auth.TokenClaims, error)
}

// Service issues and validates tokens. The token store is optional:
// with a nil store refresh tokens are stateless and logout is a no-op.
type Service struct {
	users  repository.UserRepository
	tokens repository.TokenStore
	jwt    auth.JWTService
	hasher security.PasswordHasher
}

func NewService(users repository.UserRepository, tokens repository.TokenStore,
	jwtService auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		jwt:    jwtService,
		hasher: hasher,
	}
}

// Register creates a user with the CLIENT role and logs them in.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.BadRequest("invalid password", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        []string{model.RoleClient},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("invalid credentials", nil)
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token is superseded in the store, so it cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	userID, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid refresh token", err)
	}

	if s.tokens != nil {
		ok, err := s.tokens.ValidateRefreshToken(ctx, userID, refreshToken)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		if !ok {
			return nil, apperrors.Unauthorized("refresh token no longer valid", nil)
		}
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("unknown user", nil)
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented access token for the remainder of its
// lifetime.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	if s.tokens == nil {
		return nil
	}
	if err := s.tokens.RevokeToken(ctx, accessToken); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*auth.TokenClaims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token", err)
	}

	if s.tokens != nil {
		revoked, err := s.tokens.IsRevoked(ctx, token)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		if revoked {
			return nil, apperrors.Unauthorized("token has been revoked", nil)
		}
	}

	return claims, nil
}

func (s *Service) issueTokens(ctx context.Context, user *model.User) (*model.TokenResponse, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Username, user.Roles)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.tokens != nil {
		if err := s.tokens.StoreRefreshToken(ctx, user.ID, refreshToken); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return &model.TokenResponse{
		Username:     user.Username,
		Roles:        user.Roles,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
