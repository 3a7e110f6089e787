package models

import (
	"slices"
	"strings"
	"time"
)

// StudentIDUnknown marks a student id the source could not provide.
const StudentIDUnknown = -1

// DefaultJobExpiration is how long print jobs are kept for a new user.
const DefaultJobExpiration = 7 * 24 * time.Hour

const (
	AuthTypeLDAP  = "ldap"
	AuthTypeLocal = "local"
)

const (
	RoleElder = "elder"
	RoleCTFer = "ctfer"
	RoleUser  = "user"
	RoleNone  = ""
)

// User is the canonical identity record shared by the directory, the local
// store and sessions. ShortID is the only field that asserts identity.
type User struct {
	ShortID     string `gorm:"primaryKey"            json:"short_id"`
	LongID      string `gorm:"index"                 json:"long_id"`
	StudentID   int    `gorm:"index;not null"        json:"student_id"`
	Email       string `                             json:"email"`
	DisplayName string `                             json:"display_name"`
	GivenName   string `                             json:"given_name"`
	MiddleName  string `                             json:"middle_name"`
	LastName    string `                             json:"last_name"`
	Faculty     string `                             json:"faculty"`

	// PreferredName is ordered with the most preferred name last.
	PreferredName []string `gorm:"serializer:json" json:"preferred_name"`
	Nickname      string   `                       json:"nickname"`
	Salutation    string   `                       json:"salutation"`
	RealName      string   `                       json:"real_name"`

	Groups      []string     `gorm:"serializer:json" json:"groups"`
	Enrollments []Enrollment `gorm:"serializer:json" json:"enrollments"`
	Role        string       `                       json:"role"`

	ColorPrinting bool          `json:"color_printing"`
	JobExpiration time.Duration `json:"job_expiration"`
	ActiveSince   time.Time     `json:"active_since"`

	AuthType string `gorm:"default:'ldap'" json:"auth_type"`
	Password string `                      json:"-"` // bcrypt hash, local accounts only

	Revision  int64     `gorm:"not null;default:0" json:"revision"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsLocal reports whether the account authenticates against the stored hash.
func (u *User) IsLocal() bool {
	return u.AuthType == AuthTypeLocal
}

// IsElder returns true if the user has the elder role
func (u *User) IsElder() bool {
	return u.Role == RoleElder
}

// HasRole reports whether the user's role is at least min.
func (u *User) HasRole(min string) bool {
	return RoleRank(u.Role) >= RoleRank(min)
}

// RoleRank orders roles from least to most privileged.
func RoleRank(role string) int {
	switch role {
	case RoleElder:
		return 3
	case RoleCTFer:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.PreferredName = slices.Clone(u.PreferredName)
	out.Groups = slices.Clone(u.Groups)
	out.Enrollments = slices.Clone(u.Enrollments)
	return &out
}

// UpdateNameInformation recomputes Salutation and RealName from the
// nickname, preferred names and given/last names, in that order.
func (u *User) UpdateNameInformation() {
	switch {
	case u.Nickname != "":
		u.Salutation = u.Nickname
	case len(u.PreferredName) > 0:
		u.Salutation = u.PreferredName[len(u.PreferredName)-1]
	default:
		u.Salutation = u.GivenName
	}

	if len(u.PreferredName) > 0 {
		names := slices.Clone(u.PreferredName)
		slices.Reverse(names)
		u.RealName = strings.Join(names, " ")
		return
	}
	u.RealName = strings.TrimSpace(u.GivenName + " " + u.LastName)
}

// LongIDLocalPart returns the part of LongID before '@'.
func (u *User) LongIDLocalPart() string {
	local, _, _ := strings.Cut(u.LongID, "@")
	return local
}

// TableName overrides the table name used by User to `users`
func (User) TableName() string {
	return "users"
}
