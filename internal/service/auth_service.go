package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-core/backend/config"
	"campus-core/backend/internal/dto"
	"campus-core/backend/internal/repository"
	"campus-core/backend/pkg/jwt"
	"campus-core/backend/pkg/password"
)

var (
	// ErrInvalidCredentials 邮箱不存在、密码错误、账号已停用统一归为此错误，
	// 对外不区分，避免泄露账号是否存在
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Profile(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	hasher *password.Hasher
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	hasher *password.Hasher,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		hasher: hasher,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户（停用账号视同不存在）
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	// 2. 验证密码
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. 签发 Token
	token, err := s.jwtMgr.Generate(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.cfg.Auth.TokenTTL.Seconds()),
		User:      toUserResponse(user),
	}, nil
}

// Profile 查询当前认证身份的用户信息
// Token 有效但用户已被停用时返回 ErrUserNotFound（对外 404）
func (s *authService) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", userID), zap.Error(err))
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	resp := toUserResponse(user)
	return &resp, nil
}
