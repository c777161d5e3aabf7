package ml

import (
	"fmt"
)

// ModelTypeHeuristic 启发式分类器类型名
const ModelTypeHeuristic = "heuristic"

// LoadModel 根据类型创建分类器，空字符串视为 heuristic
func LoadModel(modelType string) (Classifier, error) {
	switch modelType {
	case ModelTypeHeuristic, "":
		return NewHeuristic(), nil
	default:
		return nil, fmt.Errorf("unsupported model type: %s", modelType)
	}
}
