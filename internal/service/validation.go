package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"rosterhub-backend/internal/domain"
)

// ErrMissingRequiredColumn aborts the whole batch: without an email column
// no row can be provisioned.
var ErrMissingRequiredColumn = errors.New("missing required column: email")

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-()\s]+$`)
)

const (
	minSuppliedPasswordLen = 6
	generatedPasswordLen   = 12
	generatedPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*-_=+"
	minPhoneSignificantLen = 10
)

// RowValidator converts raw spreadsheet rows into typed provisioning
// requests, rejecting rows that fail any single field rule.
type RowValidator struct{}

func NewRowValidator() *RowValidator {
	return &RowValidator{}
}

// ValidateRows validates every row in file order. A row that fails any rule
// is wholly rejected; it never partially enters the request list. Columns
// beyond the recognized set are ignored.
func (v *RowValidator) ValidateRows(header []string, rows []domain.RawRow) (*domain.ValidationResult, error) {
	hasEmail := false
	for _, name := range header {
		if name == "email" {
			hasEmail = true
			break
		}
	}
	if !hasEmail {
		return nil, ErrMissingRequiredColumn
	}

	result := &domain.ValidationResult{}
	for _, row := range rows {
		req, reason := v.validateRow(row)
		if reason != "" {
			result.Rejections = append(result.Rejections, domain.RejectedRow{
				Row:    row.Line,
				Email:  row.Values["email"],
				Reason: reason,
			})
			continue
		}
		result.Requests = append(result.Requests, *req)
	}
	return result, nil
}

// validateRow applies the per-row rules in order, short-circuiting on the
// first failure. An empty reason means the row was accepted.
func (v *RowValidator) validateRow(row domain.RawRow) (*domain.ProvisioningRequest, string) {
	email := row.Values["email"]
	if !emailPattern.MatchString(email) {
		return nil, "invalid email format"
	}

	role := domain.MemberRoleUser
	if raw := row.Values["role"]; raw != "" {
		switch strings.ToLower(raw) {
		case "user":
			role = domain.MemberRoleUser
		case "admin":
			role = domain.MemberRoleAdmin
		default:
			return nil, fmt.Sprintf("invalid role %q, expected user or admin", raw)
		}
	}

	password := row.Values["password"]
	if password == "" {
		password = generatePassword(generatedPasswordLen)
	} else if len(password) < minSuppliedPasswordLen {
		return nil, fmt.Sprintf("password must be at least %d characters", minSuppliedPasswordLen)
	}

	profile := domain.Profile{
		FullName: row.Values["full_name"],
		Gamertag: row.Values["gamertag"],
		Discord:  row.Values["discord"],
		Division: row.Values["division"],
		PhotoURL: row.Values["photo_url"],
		Status:   row.Values["status"],
	}

	if phone := row.Values["phone"]; phone != "" {
		if !isValidPhone(phone) {
			return nil, fmt.Sprintf("invalid phone number %q", phone)
		}
		profile.Phone = phone
	}

	if dob := row.Values["dob"]; dob != "" {
		if _, err := time.Parse("2006-01-02", dob); err != nil {
			return nil, fmt.Sprintf("invalid date of birth %q, expected YYYY-MM-DD", dob)
		}
		profile.DOB = dob
	}

	if gender := row.Values["gender"]; gender != "" {
		switch strings.ToLower(gender) {
		case "male":
			profile.Gender = "Male"
		case "female":
			profile.Gender = "Female"
		case "other":
			profile.Gender = "Other"
		default:
			return nil, fmt.Sprintf("invalid gender %q", gender)
		}
	}

	profile.Onboarding = coerceBool(row.Values["onboarding"])
	profile.IsMinor = coerceBool(row.Values["is_minor"])
	profile.Platforms = splitList(row.Values["platforms"])
	profile.Languages = splitList(row.Values["languages"])
	profile.Software = splitList(row.Values["software"])

	return &domain.ProvisioningRequest{
		Email:     email,
		Password:  password,
		Role:      role,
		Profile:   profile,
		SourceRow: row.Line,
	}, ""
}

// isValidPhone accepts a loose phone shape: digits, spaces, +, -, and
// parentheses, with at least 10 non-space characters.
func isValidPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	significant := 0
	for _, r := range phone {
		if r != ' ' {
			significant++
		}
	}
	return significant >= minPhoneSignificantLen
}

// coerceBool treats {true, 1, yes, y} (case-insensitive) as true and
// anything else as false. It never rejects.
func coerceBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

// splitList splits a comma-separated cell into trimmed segments, dropping
// empty ones.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.Split(raw, ",") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func generatePassword(length int) string {
	alphabet := big.NewInt(int64(len(generatedPasswordChars)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabet)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// there is no useful recovery for a provisioning run.
			panic(fmt.Sprintf("failed to read random source: %v", err))
		}
		b[i] = generatedPasswordChars[n.Int64()]
	}
	return string(b)
}
