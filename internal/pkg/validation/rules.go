package validation

import (
	"regexp"
)

// Validation rule patterns for directory entries
var (
	// Email validation pattern
	EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Roll number pattern - branch letters followed by admission year and serial, e.g. CS2021001
	RollNumberPattern = `^[A-Z]{2,4}\d{4}\d{3}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	RollNumber *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	RollNumber: regexp.MustCompile(RollNumberPattern),
}

// StringValidation checks one string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// Email reports whether value is a usable login email
func Email(value string) bool {
	return NewStringValidation(value).WithPattern(CompiledPatterns.Email).Validate()
}

// Name reports whether value is a usable display name
func Name(value string) bool {
	return NewStringValidation(value).
		WithMinLength(NameMinLength).
		WithMaxLength(NameMaxLength).
		Validate()
}

// RollNumber reports whether value is empty or a well-formed roll number
func RollNumber(value string) bool {
	return NewStringValidation(value).
		WithRequired(false).
		WithPattern(CompiledPatterns.RollNumber).
		Validate()
}
