package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsAlreadyExists reports whether the error means the resource was created
// before. Chart seeding treats this as success.
func IsAlreadyExists(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusConflict {
			return true
		}
		return strings.Contains(strings.ToLower(apiErr.Message), "already exists")
	}
	return false
}

// ErrorCategory buckets server failures for user-facing messaging.
type ErrorCategory string

const (
	CategoryUnknownAccount ErrorCategory = "unknown-account"
	CategoryValidation     ErrorCategory = "validation"
	CategoryUnavailable    ErrorCategory = "unavailable"
	CategoryBadDescription ErrorCategory = "bad-description"
	CategoryNetwork        ErrorCategory = "network"
	CategoryGeneric        ErrorCategory = "generic"
)

// Ordered substring rules, first match wins. Kept as a list so the priority
// order stays auditable.
var errorRules = []struct {
	substrings []string
	category   ErrorCategory
	message    string
}{
	{
		substrings: []string{"unknown account", "account not found", "no such account"},
		category:   CategoryUnknownAccount,
		message:    "One of the accounts no longer exists. Refresh the suggestions and try again.",
	},
	{
		substrings: []string{"meaningless", "invalid description", "description is invalid"},
		category:   CategoryBadDescription,
		message:    "The description was too vague to classify. Add more detail about the transaction.",
	},
	{
		substrings: []string{"unavailable", "timeout", "timed out"},
		category:   CategoryUnavailable,
		message:    "The accounting service is temporarily unavailable. Try again in a moment.",
	},
	{
		substrings: []string{"validation"},
		category:   CategoryValidation,
		message:    "The backend rejected the entry as invalid. Review the details and try again.",
	},
	{
		substrings: []string{"network error", "connection refused", "no such host"},
		category:   CategoryNetwork,
		message:    "Could not reach the accounting service. Check your connection and try again.",
	},
}

// Categorize buckets an error from any journal call by substring matching
// against the server's message.
func Categorize(err error) ErrorCategory {
	if err == nil {
		return CategoryGeneric
	}
	text := strings.ToLower(err.Error())
	for _, rule := range errorRules {
		for _, s := range rule.substrings {
			if strings.Contains(text, s) {
				return rule.category
			}
		}
	}
	return CategoryGeneric
}

// FriendlyMessage converts a create/post/void failure into the message shown
// to the user. Unmatched errors fall back to a generic wrapper around the
// server's own text.
func FriendlyMessage(err error) string {
	category := Categorize(err)
	for _, rule := range errorRules {
		if rule.category == category {
			return rule.message
		}
	}
	return fmt.Sprintf("Failed to create entry: %v", err)
}
