// Package errorutil 定义服务的错误分类
package errorutil

import (
	"errors"
	"net/http"
)

// Kind 错误类别
type Kind int

const (
	// KindInternal 处理过程中的意外失败
	KindInternal Kind = iota
	// KindValidation 客户端输入缺失或格式错误
	KindValidation
)

// String 日志中使用的类别名
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error 带分类的错误，Message 原样返回给客户端
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return e.Message
}

// Unwrap 返回原始错误
func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode 错误对应的HTTP状态码
func (e *Error) StatusCode() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Validation 创建输入校验错误（400）
func Validation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

// Internal 创建内部错误（500）
func Internal(message string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: message,
		Cause:   cause,
	}
}

// Wrap 包装错误，非 *Error 类型一律视为内部错误
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{
		Kind:    KindInternal,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsValidation 错误链中是否包含校验错误
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}
