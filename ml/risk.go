package ml

// 风险等级标签
const (
	RiskVeryLow       = "Very Low Risk"
	RiskLow           = "Low Risk"
	RiskHigh          = "High Risk"
	RiskModerateHigh  = "Moderate-High Risk"
	RiskUncertain     = "Uncertain - Further Testing Recommended"
	highTierThreshold = 95
	midTierThreshold  = 85
)

// RiskLevel 根据置信度百分比和类别给出风险等级，分档下界包含在内
func RiskLevel(confidence float64, class Class) string {
	switch {
	case confidence >= highTierThreshold:
		if class == Malignant {
			return RiskHigh
		}
		return RiskVeryLow
	case confidence >= midTierThreshold:
		if class == Malignant {
			return RiskModerateHigh
		}
		return RiskLow
	default:
		return RiskUncertain
	}
}
