package domain

import "time"

// RawRow is one data row as read from the uploaded file: column name
// (lower-cased, trimmed) to trimmed cell value. Line is the 1-based line
// number in the original file, counting the header as line 1.
type RawRow struct {
	Line   int
	Values map[string]string
}

// Profile holds the optional attributes a spreadsheet row may carry for a
// member. All fields have already been validated and normalized by the time
// a Profile is constructed.
type Profile struct {
	FullName   string   `json:"full_name,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Gamertag   string   `json:"gamertag,omitempty"`
	Discord    string   `json:"discord,omitempty"`
	DOB        string   `json:"dob,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Division   string   `json:"division,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
	Status     string   `json:"status,omitempty"`
	Onboarding bool     `json:"onboarding"`
	IsMinor    bool     `json:"is_minor"`
	Platforms  []string `json:"platforms,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Software   []string `json:"software,omitempty"`
}

// ProvisioningRequest is the validated, typed unit of work. It is never
// constructed unless every present field passed validation.
type ProvisioningRequest struct {
	Email     string
	Password  string
	Role      MemberRole
	Profile   Profile
	SourceRow int
}

// RejectedRow records a row that failed validation and never entered the
// provisioning phase.
type RejectedRow struct {
	Row    int    `json:"row"`
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason"`
}

// ValidationResult is a validation pass over a whole file: the rows that
// became provisioning requests and the rows that were rejected.
type ValidationResult struct {
	Requests   []ProvisioningRequest
	Rejections []RejectedRow
}

// FailureStage tags a provisioning failure with the step that produced it.
type FailureStage string

const (
	StageDuplicate      FailureStage = "DUPLICATE"
	StageIdentityCreate FailureStage = "IDENTITY_CREATE"
	StageProfileCreate  FailureStage = "PROFILE_CREATE"
	StageUnexpected     FailureStage = "UNEXPECTED"
)

// ProvisioningOutcome is the result of attempting one ProvisioningRequest.
type ProvisioningOutcome struct {
	Email      string       `json:"email"`
	Succeeded  bool         `json:"succeeded"`
	IdentityID string       `json:"identity_id,omitempty"`
	Role       MemberRole   `json:"role,omitempty"`
	CreatedAt  time.Time    `json:"created_at,omitempty"`
	Stage      FailureStage `json:"stage,omitempty"`
	Reason     string       `json:"reason,omitempty"`
}

// ImportProgress is handed to the progress callback after every processed
// row.
type ImportProgress struct {
	Processed    int    `json:"processed"`
	Total        int    `json:"total"`
	SuccessCount int    `json:"success_count"`
	FailedCount  int    `json:"failed_count"`
	CurrentEmail string `json:"current_email"`
}

// ProgressFunc receives live progress during a batch run. It is invoked
// synchronously; implementations must not block.
type ProgressFunc func(p ImportProgress)

// BatchResult is the aggregated outcome of one full orchestrator run over
// all validated rows from a single uploaded file. Immutable once returned.
type BatchResult struct {
	BatchID    string                `json:"batch_id"`
	Total      int                   `json:"total"`
	Processed  int                   `json:"processed"`
	Successful []ProvisioningOutcome `json:"successful"`
	Failed     []ProvisioningOutcome `json:"failed"`
}
