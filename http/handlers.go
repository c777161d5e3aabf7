// Package http 提供预测API处理器
package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bcdiag/errorutil"
	"bcdiag/ml"
	"bcdiag/monitoring"
)

const defaultMaxMemory = 8 << 20

const uploadTooLargeMessage = "Uploaded file too large"

// Handlers 预测API处理器，不持有请求级状态
type Handlers struct {
	classifier ml.Classifier
	metrics    *monitoring.Collector
	log        *zap.Logger
	now        func() time.Time
	batch      func() ml.BatchResult
	maxMemory  int64
}

// NewHandlers 创建处理器，log 和 metrics 可为 nil
func NewHandlers(classifier ml.Classifier, metrics *monitoring.Collector, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewCollector(monitoring.DefaultMaxRoutes)
	}
	return &Handlers{
		classifier: classifier,
		metrics:    metrics,
		log:        log,
		now:        time.Now,
		batch:      ml.MockBatch,
		maxMemory:  defaultMaxMemory,
	}
}

// Register 注册全部路由
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /predict", h.handlePredict)
	mux.HandleFunc("POST /predict_batch", h.handlePredictBatch)
	mux.HandleFunc("GET /model_info", h.handleModelInfo)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /metrics", h.handleMetrics)
}

func (h *Handlers) timestamp() string {
	return h.now().Local().Format(timestampLayout)
}

type predictionResponse struct {
	Success              bool     `json:"success"`
	Prediction           ml.Class `json:"prediction"`
	Diagnosis            string   `json:"diagnosis"`
	Confidence           float64  `json:"confidence"`
	ProbabilityBenign    float64  `json:"probability_benign"`
	ProbabilityMalignant float64  `json:"probability_malignant"`
	RiskLevel            string   `json:"risk_level"`
	Timestamp            string   `json:"timestamp"`
}

// handlePredict 单样本预测
func (h *Handlers) handlePredict(w http.ResponseWriter, r *http.Request) {
	// 格式错误的请求体表单为空，按缺失特征处理；超限单独报告
	if err := r.ParseMultipartForm(h.maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if isTooLarge(err) {
			h.respondError(w, r, errorutil.Validation(uploadTooLargeMessage))
			return
		}
		h.log.Debug("form parse failed", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	var prediction ml.Prediction
	err := recoverAs("Prediction error: ", func() error {
		features, err := ml.ParseFeatures(func(name string) (string, bool) {
			values, ok := r.PostForm[name]
			if !ok || len(values) == 0 {
				return "", false
			}
			return values[0], true
		})
		if err != nil {
			return err
		}
		prediction, err = h.classifier.Predict(features)
		return err
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	confidence := prediction.Confidence()
	resp := predictionResponse{
		Success:              true,
		Prediction:           prediction.Class,
		Diagnosis:            prediction.Class.Diagnosis(),
		Confidence:           ml.Round(confidence, 2),
		ProbabilityBenign:    ml.Round(prediction.Benign()*100, 2),
		ProbabilityMalignant: ml.Round(prediction.Malignant()*100, 2),
		RiskLevel:            ml.RiskLevel(confidence, prediction.Class),
		Timestamp:            h.timestamp(),
	}

	h.metrics.RecordPrediction(prediction.Class)
	h.log.Debug("prediction served",
		zap.String("request_id", GetRequestID(r.Context())),
		zap.Int("class", int(prediction.Class)),
		zap.Float64("confidence", resp.Confidence),
		zap.String("risk_level", resp.RiskLevel),
	)

	respondJSON(w, http.StatusOK, resp)
}

type batchResponse struct {
	Success   bool             `json:"success"`
	Results   []ml.BatchRecord `json:"results"`
	Summary   ml.BatchSummary  `json:"summary"`
	Timestamp string           `json:"timestamp"`
}

// handlePredictBatch 批量预测（占位结果）
func (h *Handlers) handlePredictBatch(w http.ResponseWriter, r *http.Request) {
	var result ml.BatchResult
	err := recoverAs("Batch prediction error: ", func() error {
		if err := requireUpload(r); err != nil {
			return err
		}
		// 只检查是否上传了文件，不解析文件内容
		result = h.batch()
		return nil
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.metrics.RecordBatch()
	respondJSON(w, http.StatusOK, batchResponse{
		Success:   true,
		Results:   result.Results,
		Summary:   result.Summary,
		Timestamp: h.timestamp(),
	})
}

// requireUpload 检查是否有带 filename 参数的 "file" 部分。
// 没有 filename 参数的同名部分是普通表单字段，不算上传
func requireUpload(r *http.Request) error {
	mr, err := r.MultipartReader()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return errorutil.Validation("No file uploaded")
		}
		return err
	}

	found, selected := false, false
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if isTooLarge(err) {
				return errorutil.Validation(uploadTooLargeMessage)
			}
			return err
		}

		if !found && part.FormName() == "file" {
			if filename, ok := dispositionFilename(part.Header.Get("Content-Disposition")); ok {
				found, selected = true, filename != ""
			}
		}

		// 读完整个请求体，超限的上传在这里暴露
		_, err = io.Copy(io.Discard, part)
		part.Close()
		if err != nil {
			if isTooLarge(err) {
				return errorutil.Validation(uploadTooLargeMessage)
			}
			return err
		}
	}

	switch {
	case !found:
		return errorutil.Validation("No file uploaded")
	case !selected:
		return errorutil.Validation("No file selected")
	}
	return nil
}

// dispositionFilename 返回 Content-Disposition 中的 filename 参数及其是否存在
func dispositionFilename(disposition string) (string, bool) {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return "", false
	}
	filename, ok := params["filename"]
	return filename, ok
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

type modelInfoResponse struct {
	Success        bool                   `json:"success"`
	ModelType      string                 `json:"model_type"`
	BestParameters map[string]interface{} `json:"best_parameters"`
	Performance    ml.Performance         `json:"performance"`
	Features       featureInfo            `json:"features"`
	TargetEncoding map[string]int         `json:"target_encoding"`
}

type featureInfo struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// handleModelInfo 模型信息
func (h *Handlers) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	meta := ml.ModelMetadata()
	respondJSON(w, http.StatusOK, modelInfoResponse{
		Success:        true,
		ModelType:      meta.ModelType,
		BestParameters: meta.BestParams,
		Performance:    meta.Performance(),
		Features: featureInfo{
			Count: meta.NFeatures,
			Names: ml.FeatureNameList(),
		},
		TargetEncoding: meta.TargetEncoding,
	})
}

type healthResponse struct {
	Status         string `json:"status"`
	ModelLoaded    bool   `json:"model_loaded"`
	MetadataLoaded bool   `json:"metadata_loaded"`
	DemoMode       bool   `json:"demo_mode"`
	Timestamp      string `json:"timestamp"`
}

// handleHealth 健康检查
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:         "healthy",
		ModelLoaded:    true,
		MetadataLoaded: true,
		DemoMode:       ml.DemoMode,
		Timestamp:      h.timestamp(),
	})
}

// handleMetrics 指标快照
func (h *Handlers) handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.metrics.Snapshot())
}
