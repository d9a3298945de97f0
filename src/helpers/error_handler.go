package helpers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"preferred-observer/src/logger"
)

// -----------------------------------------------------------------------------
// Lookup errors
// -----------------------------------------------------------------------------

var (
	ErrStockNotFound      = errors.New("stock not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrMarketDataNotFound = errors.New("market data not found")
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type ObserverError struct {
	Message string
	Cause   error
}

func (e *ObserverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ObserverError) Unwrap() error {
	return e.Cause
}

// Distinct error types for errors.As
type ConfigurationError struct{ ObserverError }
type NetworkError struct {
	ObserverError
	StatusCode int
}
type DataSourceError struct {
	ObserverError
	Provider string
}
type DatabaseError struct{ ObserverError }
type ValidationError struct{ ObserverError }

// -----------------------------------------------------------------------------

func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{ObserverError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewNetworkError(statusCode int, message string, cause error) *NetworkError {
	return &NetworkError{ObserverError: ObserverError{Message: message, Cause: cause}, StatusCode: statusCode}
}

// -----------------------------------------------------------------------------

func NewDataSourceError(provider, message string, cause error) *DataSourceError {
	return &DataSourceError{
		ObserverError: ObserverError{Message: fmt.Sprintf("%s: %s", provider, message), Cause: cause},
		Provider:      provider,
	}
}

// -----------------------------------------------------------------------------

func NewDatabaseError(message string, cause error) *DatabaseError {
	return &DatabaseError{ObserverError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewValidationError(message string) *ValidationError {
	return &ValidationError{ObserverError{Message: message}}
}

// -----------------------------------------------------------------------------

// IsNotFound reports whether err is one of the lookup errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStockNotFound) ||
		errors.Is(err, ErrArticleNotFound) ||
		errors.Is(err, ErrMarketDataNotFound)
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger     *logger.Logger
	ErrorCount int
	BaseDelay  time.Duration
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		Logger:    log,
		BaseDelay: time.Second,
	}
}

// -----------------------------------------------------------------------------

// ExecuteWithRetry runs fn up to attempts times with exponential backoff and
// categorizes the final error by operation name.
func (e *ErrorHandler) ExecuteWithRetry(ctx context.Context, operation string, attempts int, fn func(ctx context.Context) error) error {
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			if e.ErrorCount > 0 {
				e.ErrorCount--
			}
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		e.Logger.Warning("%s failed (attempt %d/%d): %v", operation, attempt+1, attempts, err)
		delay := e.BaseDelay * time.Duration(1<<attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	e.ErrorCount++
	e.Logger.Error("%s failed after %d attempts: %v", operation, attempts, err)

	lowerOp := strings.ToLower(operation)
	msg := fmt.Sprintf("%s failed", operation)
	switch {
	case strings.Contains(lowerOp, "fetch") || strings.Contains(lowerOp, "refresh"):
		return &DataSourceError{ObserverError: ObserverError{Message: msg, Cause: err}}
	case strings.Contains(lowerOp, "save") || strings.Contains(lowerOp, "cleanup"):
		return NewDatabaseError(msg, err)
	default:
		return &ObserverError{Message: msg, Cause: err}
	}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) Handle(err error, context string) {
	if err != nil {
		e.Logger.Error("Error in %s: %v", context, err)
	}
}
