// Package http 提供统一的JSON响应
package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"bcdiag/errorutil"
)

// timestampLayout 响应中使用的本地时间格式
const timestampLayout = "2006-01-02 15:04:05"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondJSON 写入JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode JSON response", zap.Error(err))
	}
}

// respondError 按错误类别写入 {success:false, error} 响应
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	e := errorutil.Wrap(err)

	fields := []zap.Field{
		zap.String("request_id", GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.String("kind", e.Kind.String()),
		zap.String("error", e.Message),
	}
	if e.Kind == errorutil.KindValidation {
		h.log.Debug("request rejected", fields...)
	} else {
		h.log.Error("request failed", append(fields, zap.NamedError("cause", e.Cause))...)
	}

	respondJSON(w, e.StatusCode(), errorResponse{Success: false, Error: e.Message})
}

// recoverAs 执行 fn，把非校验错误和 panic 都转换为以 prefix 开头的内部错误
func recoverAs(prefix string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorutil.Internal(fmt.Sprintf("%s%v", prefix, r), fmt.Errorf("panic: %v", r))
		}
	}()

	if err := fn(); err != nil {
		if errorutil.IsValidation(err) {
			return err
		}
		return errorutil.Internal(prefix+err.Error(), err)
	}
	return nil
}
