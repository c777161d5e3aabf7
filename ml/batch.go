package ml

const mockBatchSize = 3

// BatchRecord 批量预测中的单条结果
type BatchRecord struct {
	RecordID             int     `json:"record_id"`
	Prediction           Class   `json:"prediction"`
	Diagnosis            string  `json:"diagnosis"`
	Confidence           float64 `json:"confidence"`
	ProbabilityBenign    float64 `json:"probability_benign"`
	ProbabilityMalignant float64 `json:"probability_malignant"`
	RiskLevel            string  `json:"risk_level"`
}

// BatchSummary 批量预测汇总
type BatchSummary struct {
	TotalRecords   int     `json:"total_records"`
	BenignCount    int     `json:"benign_count"`
	MalignantCount int     `json:"malignant_count"`
	AvgConfidence  float64 `json:"avg_confidence"`
}

// BatchResult 批量预测结果
type BatchResult struct {
	Results []BatchRecord
	Summary BatchSummary
}

// MockBatch 返回批量接口的固定占位结果，与上传内容无关
func MockBatch() BatchResult {
	records := make([]BatchRecord, 0, mockBatchSize)
	for idx := 0; idx < mockBatchSize; idx++ {
		class := Benign
		if idx >= 2 {
			class = Malignant
		}
		confidence := 85.0 + float64(idx*3)

		benign, malignant := confidence, 100-confidence
		if class == Malignant {
			benign, malignant = 100-confidence, confidence
		}

		records = append(records, BatchRecord{
			RecordID:             idx + 1,
			Prediction:           class,
			Diagnosis:            class.String(),
			Confidence:           Round(confidence, 2),
			ProbabilityBenign:    Round(benign, 2),
			ProbabilityMalignant: Round(malignant, 2),
			RiskLevel:            RiskLevel(confidence, class),
		})
	}

	return BatchResult{Results: records, Summary: Summarize(records)}
}

// Summarize 统计各类别数量和平均置信度
func Summarize(records []BatchRecord) BatchSummary {
	summary := BatchSummary{TotalRecords: len(records)}
	if len(records) == 0 {
		return summary
	}

	total := 0.0
	for _, r := range records {
		if r.Prediction == Malignant {
			summary.MalignantCount++
		} else {
			summary.BenignCount++
		}
		total += r.Confidence
	}
	summary.AvgConfidence = Round(total/float64(len(records)), 2)
	return summary
}
