package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LeonardoAhh/climalaboral/internal/api/middleware"
	"github.com/LeonardoAhh/climalaboral/pkg/response"
)

// MustGetAdminID 从 Gin 上下文中安全提取 admin_id。
// 如果认证中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetAdminID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxAdminID)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetEmployeeKey 从 Gin 上下文中安全提取 employee_key。
func MustGetEmployeeKey(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxEmployeeKey)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}
