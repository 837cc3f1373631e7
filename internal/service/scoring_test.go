package service

import (
	"errors"
	"math"
	"testing"

	"github.com/LeonardoAhh/climalaboral/internal/model"
)

// 两类别四题的小题库，便于手算期望值
func scoringTestQuestions() []model.SurveyQuestion {
	return []model.SurveyQuestion{
		{QuestionID: "q1", Category: "ambiente", CategoryName: "Ambiente Laboral", Position: 1},
		{QuestionID: "q2", Category: "ambiente", CategoryName: "Ambiente Laboral", Position: 2},
		{QuestionID: "q3", Category: "liderazgo", CategoryName: "Liderazgo", Position: 3},
		{QuestionID: "q4", Category: "liderazgo", CategoryName: "Liderazgo", Position: 4},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateScores_Basic(t *testing.T) {
	questions := scoringTestQuestions()
	answers := model.AnswerMap{"q1": 4, "q2": 5, "q3": 2, "q4": 3}

	scores, overall, err := CalculateScores(answers, questions)
	if err != nil {
		t.Fatalf("CalculateScores 应成功: %v", err)
	}
	if !almostEqual(scores["ambiente"], 4.5) {
		t.Errorf("期望 ambiente=4.5，实际=%v", scores["ambiente"])
	}
	if !almostEqual(scores["liderazgo"], 2.5) {
		t.Errorf("期望 liderazgo=2.5，实际=%v", scores["liderazgo"])
	}
	if !almostEqual(overall, 3.5) {
		t.Errorf("期望总分=3.5，实际=%v", overall)
	}
}

func TestCalculateScores_RoundHalfUp(t *testing.T) {
	// 三题一类别：(3+3+4)/3 = 3.333... → 3.33；(3+4+4)/3 = 3.666... → 3.67
	questions := []model.SurveyQuestion{
		{QuestionID: "q1", Category: "a", CategoryName: "A", Position: 1},
		{QuestionID: "q2", Category: "a", CategoryName: "A", Position: 2},
		{QuestionID: "q3", Category: "a", CategoryName: "A", Position: 3},
		{QuestionID: "q4", Category: "b", CategoryName: "B", Position: 4},
		{QuestionID: "q5", Category: "b", CategoryName: "B", Position: 5},
		{QuestionID: "q6", Category: "b", CategoryName: "B", Position: 6},
	}
	answers := model.AnswerMap{"q1": 3, "q2": 3, "q3": 4, "q4": 3, "q5": 4, "q6": 4}

	scores, overall, err := CalculateScores(answers, questions)
	if err != nil {
		t.Fatalf("CalculateScores 应成功: %v", err)
	}
	if !almostEqual(scores["a"], 3.33) {
		t.Errorf("期望 a=3.33，实际=%v", scores["a"])
	}
	if !almostEqual(scores["b"], 3.67) {
		t.Errorf("期望 b=3.67，实际=%v", scores["b"])
	}
	// 总分 = (3.33+3.67)/2 = 3.5
	if !almostEqual(overall, 3.5) {
		t.Errorf("期望总分=3.5，实际=%v", overall)
	}
}

func TestCalculateScores_RangeInvariant(t *testing.T) {
	questions := scoringTestQuestions()
	// 全部答案取边界值
	for _, v := range []int{1, 5} {
		answers := model.AnswerMap{"q1": v, "q2": v, "q3": v, "q4": v}
		scores, overall, err := CalculateScores(answers, questions)
		if err != nil {
			t.Fatalf("CalculateScores 应成功: %v", err)
		}
		for tag, s := range scores {
			if s < 1 || s > 5 {
				t.Errorf("类别 %s 分数越界: %v", tag, s)
			}
		}
		if overall < 1 || overall > 5 {
			t.Errorf("总分越界: %v", overall)
		}
		if !almostEqual(overall, float64(v)) {
			t.Errorf("全 %d 时期望总分=%d，实际=%v", v, v, overall)
		}
	}
}

func TestCalculateScores_MissingAnswer(t *testing.T) {
	questions := scoringTestQuestions()
	answers := model.AnswerMap{"q1": 4, "q2": 5, "q3": 2} // 缺 q4

	_, _, err := CalculateScores(answers, questions)
	if !errors.Is(err, ErrIncompleteAnswerSet) {
		t.Errorf("期望 ErrIncompleteAnswerSet，实际: %v", err)
	}
}

func TestCalculateScores_NoQuestions(t *testing.T) {
	_, _, err := CalculateScores(model.AnswerMap{}, nil)
	if err == nil {
		t.Error("空题库应返回错误")
	}
}
