package service

import (
	"regexp"
	"strings"
	"time"

	"toolrent-backend/internal/domain"
)

// Regex precompiled for efficiency
var (
	nameRegex      = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	toolNameRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ \d*/"'.#,-]+$`)
	serialRegex    = regexp.MustCompile(`^[a-zA-Z0-9.-]{5,30}$`)
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneTrimRegex = regexp.MustCompile(`[\s\-()]`)
	cellphoneRegex = regexp.MustCompile(`^\+569\d{8}$`)
)

// NormalizeRUN strips dots and dashes and upper-cases the verifier digit,
// so "12.345.678-k" and "12345678K" are the same key.
func NormalizeRUN(run string) string {
	run = strings.ReplaceAll(run, ".", "")
	run = strings.ReplaceAll(run, "-", "")
	return strings.ToUpper(run)
}

func validRUN(run string) bool {
	return len(NormalizeRUN(run)) >= 2
}

// ReformatCellphone rewrites common ways of writing a Chilean mobile
// number into the +569XXXXXXXX canonical form.
func ReformatCellphone(cellphone string) string {
	clean := phoneTrimRegex.ReplaceAllString(cellphone, "")
	switch {
	case strings.HasPrefix(clean, "+56"):
		return clean
	case strings.HasPrefix(clean, "0"):
		return "+56" + clean[1:]
	case len(clean) == 9 && strings.HasPrefix(clean, "9"):
		return "+56" + clean
	}
	return clean
}

func validCellphone(cellphone string) bool {
	return cellphoneRegex.MatchString(ReformatCellphone(cellphone))
}

func validatePerson(run, name, surname, email, cellphone string) error {
	if !validRUN(run) {
		return domain.InvalidInputf("invalid RUN %q", run)
	}
	if !nameRegex.MatchString(name) {
		return domain.InvalidInputf("invalid name %q", name)
	}
	if !nameRegex.MatchString(surname) {
		return domain.InvalidInputf("invalid surname %q", surname)
	}
	if !emailRegex.MatchString(email) {
		return domain.InvalidInputf("invalid email %q", email)
	}
	if !validCellphone(cellphone) {
		return domain.InvalidInputf("invalid cellphone %q", cellphone)
	}
	return nil
}

func validateToolType(t *domain.ToolType) error {
	if !toolNameRegex.MatchString(t.Name) {
		return domain.InvalidInputf("invalid tool name %q", t.Name)
	}
	if t.Category != "" && !toolNameRegex.MatchString(t.Category) {
		return domain.InvalidInputf("invalid category %q", t.Category)
	}
	if t.ReplacementValue < 0 || t.RentalFee < 0 || t.DamageFee < 0 {
		return domain.InvalidInputf("fees and replacement value must not be negative")
	}
	return nil
}

func validateSerial(serial string) error {
	if !serialRegex.MatchString(serial) {
		return domain.InvalidInputf("invalid serial number %q", serial)
	}
	return nil
}

func validateDateOrder(loanDate, dueDate time.Time) error {
	if domain.DateOnly(dueDate).Before(domain.DateOnly(loanDate)) {
		return domain.InvalidInputf("due date precedes loan date")
	}
	return nil
}
