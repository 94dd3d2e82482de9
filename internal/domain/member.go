package domain

type MemberRole string

const (
	MemberRoleUser  MemberRole = "user"
	MemberRoleAdmin MemberRole = "admin"
)

// Member is the application-level profile row stored in the members table,
// keyed by the authentication identity it belongs to.
type Member struct {
	IdentityID string     `json:"identity_id"`
	Email      string     `json:"email"`
	Role       MemberRole `json:"role"`
	FullName   string     `json:"full_name"`
	Phone      string     `json:"phone"`
	Gamertag   string     `json:"gamertag"`
	Discord    string     `json:"discord"`
	DOB        string     `json:"dob"`
	Gender     string     `json:"gender"`
	Division   string     `json:"division"`
	PhotoURL   string     `json:"photo_url"`
	Status     string     `json:"status"`
	Onboarding bool       `json:"onboarding"`
	IsMinor    bool       `json:"is_minor"`
	Platforms  []string   `json:"platforms"`
	Languages  []string   `json:"languages"`
	Software   []string   `json:"software"`
	CreatedOn  string     `json:"created_on"`
}
