package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LeonardoAhh/climalaboral/internal/service"
	"github.com/LeonardoAhh/climalaboral/pkg/response"
)

// AnalyticsHandler 组织分析模块 HTTP 处理器
type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Get 全量分析快照（全局 KPI + 部门/区域分组）
// GET /api/v1/admin/analytics
func (h *AnalyticsHandler) Get(c *gin.Context) {
	result, err := h.analyticsSvc.Build(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/analytics_handler.go
