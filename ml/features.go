// Package ml 提供肿瘤特征解析与良恶性分类
package ml

import (
	"errors"
	"strconv"
	"strings"

	"bcdiag/errorutil"
)

// FeatureCount 输入特征数量
const FeatureCount = 30

// FeatureNames 输入特征表。顺序决定向量下标，也决定多个字段缺失时报告哪一个
var FeatureNames = [FeatureCount]string{
	"radius_mean", "texture_mean", "perimeter_mean", "area_mean",
	"smoothness_mean", "compactness_mean", "concavity_mean",
	"concave points_mean", "symmetry_mean", "fractal_dimension_mean",
	"radius_se", "texture_se", "perimeter_se", "area_se",
	"smoothness_se", "compactness_se", "concavity_se",
	"concave points_se", "symmetry_se", "fractal_dimension_se",
	"radius_worst", "texture_worst", "perimeter_worst", "area_worst",
	"smoothness_worst", "compactness_worst", "concavity_worst",
	"concave points_worst", "symmetry_worst", "fractal_dimension_worst",
}

// 规则用到的特征下标
const (
	IdxRadiusMean        = 0
	IdxTextureMean       = 1
	IdxPerimeterMean     = 2
	IdxAreaMean          = 3
	IdxConcavityMean     = 6
	IdxConcavePointsMean = 7
)

const invalidInputMessage = "Invalid input values. Please enter valid numbers."

// FeatureVector 按 FeatureNames 顺序排列的特征值
type FeatureVector [FeatureCount]float64

// ParseFeatures 按特征名查找字符串值并构建向量。lookup 返回字段是否存在，
// 未提交和空字符串都视为缺失
func ParseFeatures(lookup func(name string) (string, bool)) (FeatureVector, error) {
	var vec FeatureVector
	for i, name := range FeatureNames {
		raw, ok := lookup(name)
		if !ok || raw == "" {
			return FeatureVector{}, errorutil.Validation("Missing feature: " + name)
		}
		value, err := parseValue(raw)
		if err != nil {
			return FeatureVector{}, errorutil.Validation(invalidInputMessage)
		}
		vec[i] = value
	}
	return vec, nil
}

// parseValue 溢出的值保留为 ±Inf，只拒绝语法错误
func parseValue(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return value, nil
		}
		return 0, err
	}
	return value, nil
}

// FeatureNameList 返回特征表的切片副本
func FeatureNameList() []string {
	names := make([]string, FeatureCount)
	copy(names, FeatureNames[:])
	return names
}
