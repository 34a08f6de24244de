package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"google.golang.org/api/googleapi"
)

// Failure categories for upstream calls. Use errors.Is to match them.
var (
	ErrChannelNotFound   = errors.New("channel not found")
	ErrUpstreamAuth      = errors.New("youtube api rejected the api key")
	ErrUpstreamQuota     = errors.New("youtube api quota exceeded")
	ErrTransport         = errors.New("youtube api request failed")
	ErrMalformedResponse = errors.New("malformed youtube api response")
	ErrInvalidInput      = errors.New("invalid input")
)

var (
	quotaReasons = map[string]bool{
		"quotaExceeded":         true,
		"dailyLimitExceeded":    true,
		"rateLimitExceeded":     true,
		"userRateLimitExceeded": true,
	}
	authReasons = map[string]bool{
		"keyInvalid":          true,
		"keyExpired":          true,
		"forbidden":           true,
		"accessNotConfigured": true,
		"ipRefererBlocked":    true,
	}
)

// UpstreamError wraps a failed call to the YouTube Data API with its category.
type UpstreamError struct {
	Op   string
	Kind error
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func upstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Kind: classifyError(err), Err: err}
}

func malformed(op, format string, args ...any) error {
	return &UpstreamError{Op: op, Kind: ErrMalformedResponse, Err: fmt.Errorf(format, args...)}
}

// classifyError maps a client library error onto a failure category
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		for _, item := range apiErr.Errors {
			if quotaReasons[item.Reason] {
				return ErrUpstreamQuota
			}
			if authReasons[item.Reason] {
				return ErrUpstreamAuth
			}
		}
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return ErrUpstreamQuota
		case http.StatusUnauthorized:
			return ErrUpstreamAuth
		}
		return ErrTransport
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrTransport
	}

	return ErrMalformedResponse
}

// errorKind names the category for API responses
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrChannelNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrUpstreamAuth):
		return "auth"
	case errors.Is(err, ErrUpstreamQuota):
		return "quota"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "internal"
	}
}
