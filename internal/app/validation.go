// Package app implements the application business logic.
package app

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
	"github.com/LHProvin/exercita365b/internal/domain/services"
)

// nationalIDLength is the fixed length of the national identifier.
const nationalIDLength = 11

// birthdateLayout is the accepted calendar date format.
const birthdateLayout = "2006-01-02"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError reports the set of fields that failed validation.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// fieldCollector accumulates offending field names so a single response can
// report all of them.
type fieldCollector struct {
	fields []string
}

func (c *fieldCollector) fail(field string) {
	c.fields = append(c.fields, field)
}

func (c *fieldCollector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

func validateEmail(email string) bool {
	return email != "" && emailRegex.MatchString(email)
}

func validatePassword(password string) bool {
	return len(password) >= services.MinPasswordLength
}

func validateGender(gender string) bool {
	return entities.Gender(gender).IsValid()
}

func validateNationalID(nationalID string) bool {
	return len(nationalID) == nationalIDLength
}

func parseBirthdate(birthdate string) (time.Time, bool) {
	parsed, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// sanitizeText neutralizes control characters before storage and trims
// surrounding whitespace.
func sanitizeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}
