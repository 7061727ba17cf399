package validator

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for stored attendance dates.
const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidDate accepts only zero-padded YYYY-MM-DD so the string compares
// equal to what is stored.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return date, date.Format(DateLayout) == dateStr
}

// FormatDate renders t in the stored date format, in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
