package ml

import "math"

// Rule 当 Index 处的特征严格大于 Threshold 时计一分
type Rule struct {
	Index     int
	Threshold float64
}

// DefaultRules 演示模式使用的六条阈值规则
var DefaultRules = []Rule{
	{Index: IdxRadiusMean, Threshold: 17.0},
	{Index: IdxTextureMean, Threshold: 20.0},
	{Index: IdxPerimeterMean, Threshold: 115.0},
	{Index: IdxAreaMean, Threshold: 900},
	{Index: IdxConcavityMean, Threshold: 0.15},
	{Index: IdxConcavePointsMean, Threshold: 0.08},
}

const (
	malignantScore = 4
	baseProb       = 0.75
	probStep       = 0.05
	maxProb        = 0.98
)

// Heuristic 演示模式分类器，统计六个均值特征超过阈值的个数
type Heuristic struct {
	rules []Rule
}

// NewHeuristic 使用默认规则创建分类器
func NewHeuristic() *Heuristic {
	return &Heuristic{rules: DefaultRules}
}

// Score 满足的规则数量
func (h *Heuristic) Score(features FeatureVector) int {
	score := 0
	for _, rule := range h.rules {
		if features[rule.Index] > rule.Threshold {
			score++
		}
	}
	return score
}

// Predict 得分不低于4判为恶性，概率随得分与阈值的距离递增
func (h *Heuristic) Predict(features FeatureVector) (Prediction, error) {
	score := h.Score(features)
	maxScore := len(h.rules)

	var p Prediction
	if score >= malignantScore {
		p.Class = Malignant
		p.Probabilities[Malignant] = scaledProb(score)
		p.Probabilities[Benign] = 1 - p.Probabilities[Malignant]
	} else {
		p.Class = Benign
		p.Probabilities[Benign] = scaledProb(maxScore - score)
		p.Probabilities[Malignant] = 1 - p.Probabilities[Benign]
	}
	return p, nil
}

// scaledProb 计算 min(0.75 + steps*0.05, 0.98)。内层转换强制乘积单独舍入，避免 FMA
func scaledProb(steps int) float64 {
	return math.Min(baseProb+float64(float64(steps)*probStep), maxProb)
}
