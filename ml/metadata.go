package ml

// DemoMode 编译期开启，预测来自 Heuristic 而非训练好的模型
const DemoMode = true

// Metadata 演示所替代的参考模型信息。指标为该模型的评估结果，不在此计算
type Metadata struct {
	ModelType      string
	BestParams     map[string]interface{}
	CVScore        float64
	TestAccuracy   float64
	TestPrecision  float64
	TestRecall     float64
	TestF1         float64
	TestROCAUC     float64
	NFeatures      int
	TargetEncoding map[string]int
}

// Performance 模型信息接口返回的指标
type Performance struct {
	CVROCAUC      float64 `json:"cv_roc_auc"`
	TestAccuracy  float64 `json:"test_accuracy"`
	TestPrecision float64 `json:"test_precision"`
	TestRecall    float64 `json:"test_recall"`
	TestF1        float64 `json:"test_f1"`
	TestROCAUC    float64 `json:"test_roc_auc"`
}

var metadata = Metadata{
	ModelType:     "RandomForestClassifier",
	BestParams:    map[string]interface{}{},
	CVScore:       0.991,
	TestAccuracy:  0.9737,
	TestPrecision: 1.0,
	TestRecall:    0.9286,
	TestF1:        0.9630,
	TestROCAUC:    0.9964,
	NFeatures:     FeatureCount,
	TargetEncoding: map[string]int{
		Benign.String():    int(Benign),
		Malignant.String(): int(Malignant),
	},
}

// ModelMetadata 返回副本，调用方无法修改全局记录
func ModelMetadata() Metadata {
	m := metadata
	m.BestParams = make(map[string]interface{}, len(metadata.BestParams))
	for k, v := range metadata.BestParams {
		m.BestParams[k] = v
	}
	m.TargetEncoding = make(map[string]int, len(metadata.TargetEncoding))
	for k, v := range metadata.TargetEncoding {
		m.TargetEncoding[k] = v
	}
	return m
}

// Performance 保留4位小数的指标
func (m Metadata) Performance() Performance {
	return Performance{
		CVROCAUC:      Round(m.CVScore, 4),
		TestAccuracy:  Round(m.TestAccuracy, 4),
		TestPrecision: Round(m.TestPrecision, 4),
		TestRecall:    Round(m.TestRecall, 4),
		TestF1:        Round(m.TestF1, 4),
		TestROCAUC:    Round(m.TestROCAUC, 4),
	}
}
