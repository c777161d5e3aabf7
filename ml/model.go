package ml

import "math"

// Class 诊断类别
type Class int

// 类别编码与模型输出一致
const (
	Benign    Class = 0
	Malignant Class = 1
)

// Diagnosis 单样本预测展示的诊断文本
func (c Class) Diagnosis() string {
	if c == Malignant {
		return "Malignant (Cancer)"
	}
	return "Benign (Not Cancer)"
}

// String 批量结果和目标编码使用的短标签
func (c Class) String() string {
	if c == Malignant {
		return "Malignant"
	}
	return "Benign"
}

// Prediction 预测类别及概率对（良性，恶性）
type Prediction struct {
	Class         Class
	Probabilities [2]float64
}

// Benign 良性概率
func (p Prediction) Benign() float64    { return p.Probabilities[Benign] }
// Malignant 恶性概率
func (p Prediction) Malignant() float64 { return p.Probabilities[Malignant] }

// Confidence 预测类别的概率百分比，未取整
func (p Prediction) Confidence() float64 {
	return p.Probabilities[p.Class] * 100
}

// RiskLevel 按未取整的置信度计算风险等级
func (p Prediction) RiskLevel() string {
	return RiskLevel(p.Confidence(), p.Class)
}

// Classifier 分类器接口
type Classifier interface {
	Predict(features FeatureVector) (Prediction, error)
}

// Round 按指定小数位四舍五入（远离零）
func Round(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
