package errors

import (
	"errors"
	"fmt"
)

// NewDataSourceError reports a failed fetch or decode of the user batch
func NewDataSourceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDataSource,
		Message: fmt.Sprintf("data source %s failed", operation),
		Code:    "DATA_SOURCE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewMalformedCriteriaError reports a criteria value that cannot be applied
func NewMalformedCriteriaError(field string, value string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedCriteria,
		Message: fmt.Sprintf("invalid %s %q: %s", field, value, reason),
		Code:    "MALFORMED_CRITERIA",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewEvaluationError wraps a fault raised while filtering
func NewEvaluationError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeEvaluation,
		Message: "filter evaluation failed",
		Code:    "EVALUATION_FAULT",
		Cause:   cause,
	}
}

// NewConfigError reports an invalid or unreadable configuration
func NewConfigError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Code:    "CONFIG_INVALID",
		Cause:   cause,
	}
}

// IsDataSourceError checks if an error is a data source error
func IsDataSourceError(err error) bool {
	return hasType(err, ErrorTypeDataSource)
}

// IsMalformedCriteriaError checks if an error is a malformed criteria error
func IsMalformedCriteriaError(err error) bool {
	return hasType(err, ErrorTypeMalformedCriteria)
}

// IsEvaluationError checks if an error is an evaluation error
func IsEvaluationError(err error) bool {
	return hasType(err, ErrorTypeEvaluation)
}

func hasType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.IsType(t)
	}
	return false
}
