// Package validation provides composable field validation rules.
//
// A Rule returns an error message or empty string if valid, the same
// convention component validators use, so rules plug directly into form
// fields:
//
//	username := validation.All(
//		validation.Required(),
//		validation.MinLength(3),
//	)
//	if msg := username(value); msg != "" {
//		// show msg next to the field
//	}
package validation

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
)

// Rule checks a value and returns an error message, or the empty string
// when the value is valid.
type Rule[T any] func(T) string

// All combines rules into one that reports the first failure.
func All[T any](rules ...Rule[T]) Rule[T] {
	return func(value T) string {
		for _, rule := range rules {
			if msg := rule(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// WithMessage replaces the message of a failing rule.
func WithMessage[T any](rule Rule[T], message string) Rule[T] {
	return func(value T) string {
		if rule(value) != "" {
			return message
		}
		return ""
	}
}

// Required rejects values that are empty after trimming whitespace.
func Required() Rule[string] {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "This field is required"
		}
		return ""
	}
}

// MinLength rejects values shorter than n characters.
func MinLength(n int) Rule[string] {
	return func(value string) string {
		if len([]rune(value)) < n {
			return fmt.Sprintf("Must be at least %d characters", n)
		}
		return ""
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int) Rule[string] {
	return func(value string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("Must be at most %d characters", n)
		}
		return ""
	}
}

// Matches rejects values that do not match the regular expression.
// The pattern must compile; Matches panics otherwise, like regexp.MustCompile.
func Matches(pattern string) Rule[string] {
	re := regexp.MustCompile(pattern)
	return func(value string) string {
		if !re.MatchString(value) {
			return "Invalid format"
		}
		return ""
	}
}

// OneOf rejects values outside the allowed set.
func OneOf[T comparable](allowed ...T) Rule[T] {
	return func(value T) string {
		for _, candidate := range allowed {
			if value == candidate {
				return ""
			}
		}
		names := make([]string, len(allowed))
		for i, candidate := range allowed {
			names[i] = fmt.Sprint(candidate)
		}
		return "Must be one of: " + strings.Join(names, ", ")
	}
}

// Min rejects values below the limit.
func Min[T cmp.Ordered](limit T) Rule[T] {
	return func(value T) string {
		if value < limit {
			return fmt.Sprintf("Must be at least %v", limit)
		}
		return ""
	}
}

// Max rejects values above the limit.
func Max[T cmp.Ordered](limit T) Rule[T] {
	return func(value T) string {
		if value > limit {
			return fmt.Sprintf("Must be at most %v", limit)
		}
		return ""
	}
}
