package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	failOn    map[string]error // 按工号注入落库错误
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[string]*model.Employee),
		failOn:    make(map[string]error),
	}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if err, ok := m.failOn[emp.EmployeeID]; ok {
		return err
	}
	if _, exists := m.employees[emp.EmployeeKey]; exists {
		return gorm.ErrDuplicatedKey
	}
	cp := *emp
	m.employees[emp.EmployeeKey] = &cp
	return nil
}

func (m *mockEmployeeRepo) GetByKey(_ context.Context, key string) (*model.Employee, error) {
	if e, ok := m.employees[key]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) ListAll(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })
	return result, nil
}

func (m *mockEmployeeRepo) ListWithFilters(_ context.Context, filters *repository.EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error) {
	var all []model.Employee
	for _, e := range m.employees {
		if filters != nil {
			if filters.Department != "" && e.Department != filters.Department {
				continue
			}
			if filters.Keyword != "" {
				kw := strings.ToUpper(filters.Keyword)
				if !strings.Contains(strings.ToUpper(e.Name), kw) &&
					!strings.Contains(e.EmployeeID, filters.Keyword) &&
					!strings.Contains(e.CURP, kw) {
					continue
				}
			}
		}
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	if err, ok := m.failOn[emp.EmployeeID]; ok {
		return err
	}
	cp := *emp
	m.employees[emp.EmployeeKey] = &cp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, key string) error {
	delete(m.employees, key)
	return nil
}

// ── Mock QuestionRepository ──

type mockQuestionRepo struct {
	questions []model.SurveyQuestion
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{}
}

func (m *mockQuestionRepo) List(_ context.Context) ([]model.SurveyQuestion, error) {
	result := make([]model.SurveyQuestion, len(m.questions))
	copy(result, m.questions)
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (m *mockQuestionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.questions)), nil
}

func (m *mockQuestionRepo) BatchCreate(_ context.Context, questions []model.SurveyQuestion) error {
	m.questions = append(m.questions, questions...)
	return nil
}

func (m *mockQuestionRepo) ReplaceAll(_ context.Context, questions []model.SurveyQuestion) error {
	m.questions = make([]model.SurveyQuestion, len(questions))
	copy(m.questions, questions)
	return nil
}

// ── Mock ProgressRepository ──

type mockProgressRepo struct {
	progress map[string]*model.SurveyProgress
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{progress: make(map[string]*model.SurveyProgress)}
}

func (m *mockProgressRepo) Get(_ context.Context, employeeKey string) (*model.SurveyProgress, error) {
	if p, ok := m.progress[employeeKey]; ok {
		cp := *p
		cp.Answers = make(model.AnswerMap, len(p.Answers))
		for k, v := range p.Answers {
			cp.Answers[k] = v
		}
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgressRepo) Upsert(_ context.Context, progress *model.SurveyProgress) error {
	cp := *progress
	cp.Answers = make(model.AnswerMap, len(progress.Answers))
	for k, v := range progress.Answers {
		cp.Answers[k] = v
	}
	m.progress[progress.EmployeeKey] = &cp
	return nil
}

func (m *mockProgressRepo) Delete(_ context.Context, employeeKey string) error {
	delete(m.progress, employeeKey)
	return nil
}

// ── Mock ResponseRepository ──

type mockResponseRepo struct {
	responses map[string]*model.SurveyResponse
	createErr error
}

func newMockResponseRepo() *mockResponseRepo {
	return &mockResponseRepo{responses: make(map[string]*model.SurveyResponse)}
}

func (m *mockResponseRepo) Create(_ context.Context, resp *model.SurveyResponse) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.responses[resp.EmployeeKey]; exists {
		return gorm.ErrDuplicatedKey
	}
	cp := *resp
	m.responses[resp.EmployeeKey] = &cp
	return nil
}

func (m *mockResponseRepo) Get(_ context.Context, employeeKey string) (*model.SurveyResponse, error) {
	if r, ok := m.responses[employeeKey]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResponseRepo) ListAll(_ context.Context) ([]model.SurveyResponse, error) {
	var result []model.SurveyResponse
	for _, r := range m.responses {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })
	return result, nil
}

// ── Mock FailedImportRepository ──

type mockFailedImportRepo struct {
	records map[string]*model.FailedImport
	seq     int
}

func newMockFailedImportRepo() *mockFailedImportRepo {
	return &mockFailedImportRepo{records: make(map[string]*model.FailedImport)}
}

func (m *mockFailedImportRepo) Create(_ context.Context, rec *model.FailedImport) error {
	if rec.ID == "" {
		m.seq++
		rec.ID = fmt.Sprintf("fail-%03d", m.seq)
	}
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockFailedImportRepo) GetByID(_ context.Context, id string) (*model.FailedImport, error) {
	if r, ok := m.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFailedImportRepo) List(_ context.Context, includeResolved bool) ([]model.FailedImport, error) {
	var result []model.FailedImport
	for _, r := range m.records {
		if !includeResolved && r.Resolved {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockFailedImportRepo) SetResolved(_ context.Context, id string) error {
	if r, ok := m.records[id]; ok {
		r.Resolved = true
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockFailedImportRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin
	seq    int
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	if admin.AdminID == "" {
		m.seq++
		admin.AdminID = fmt.Sprintf("admin-%03d", m.seq)
	}
	cp := *admin
	m.admins[admin.AdminID] = &cp
	return nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	if a, ok := m.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.admins)), nil
}

// ── 聚合构造 ──

// newMockRepository 构建全 mock 的 Repository 聚合
// 事务直接在同一组 mock 上执行 fn（单测不验证原子性本身）
func newMockRepository() (*repository.Repository, *mockEmployeeRepo, *mockQuestionRepo, *mockProgressRepo, *mockResponseRepo, *mockFailedImportRepo, *mockAdminRepo) {
	empRepo := newMockEmployeeRepo()
	qRepo := newMockQuestionRepo()
	pRepo := newMockProgressRepo()
	rRepo := newMockResponseRepo()
	fRepo := newMockFailedImportRepo()
	aRepo := newMockAdminRepo()

	repo := &repository.Repository{
		Employee:     empRepo,
		Question:     qRepo,
		Progress:     pRepo,
		Response:     rRepo,
		FailedImport: fRepo,
		Admin:        aRepo,
	}
	repo.TxFunc = func(_ context.Context, fn func(*repository.Repository) error) error {
		return fn(repo)
	}
	return repo, empRepo, qRepo, pRepo, rRepo, fRepo, aRepo
}
