package directory

import (
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"

	"github.com/go-ldap/ldap/v3"
)

// semesterPattern finds a semester OU anywhere in a group DN.
var semesterPattern = regexp.MustCompile(`(?i)ou=(fall|winter|summer) (2[0-9]{3})(?:[^0-9]|$)`)

var semesterLeafPattern = regexp.MustCompile(`(?i)^(fall|winter|summer) 2[0-9]{3}$`)

// whenCreated is generalized time; Active Directory sends one fractional digit.
var whenCreatedLayouts = []string{
	"20060102150405.0Z",
	"20060102150405Z",
}

// RoleFunc derives a role from classified group memberships.
type RoleFunc func(groups []string, enrollments []models.Enrollment) string

// Normalizer converts raw directory attributes into user records.
type Normalizer struct {
	role RoleFunc
}

// NewNormalizer creates a normalizer using role to derive User.Role.
func NewNormalizer(role RoleFunc) *Normalizer {
	if role == nil {
		role = func([]string, []models.Enrollment) string { return models.RoleNone }
	}
	return &Normalizer{role: role}
}

// Normalize maps attrs to a user. Missing attributes become empty values
// (or StudentIDUnknown), and malformed group DNs are skipped.
func (n *Normalizer) Normalize(attrs core.AttributeSet) *models.User {
	u := &models.User{
		ShortID:       attrs.First("samaccountname"),
		LongID:        strings.ToLower(attrs.First("userprincipalname")),
		StudentID:     parseStudentID(attrs.First("employeeid")),
		Email:         attrs.First("mail"),
		DisplayName:   attrs.First("displayname"),
		GivenName:     attrs.First("givenname"),
		MiddleName:    attrs.First("middlename"),
		LastName:      attrs.First("sn"),
		Faculty:       attrs.First("department"),
		ActiveSince:   parseWhenCreated(attrs.First("whencreated")),
		PreferredName: []string{},
		Groups:        []string{},
		Enrollments:   []models.Enrollment{},
		AuthType:      models.AuthTypeLDAP,
		JobExpiration: models.DefaultJobExpiration,
	}

	for _, dn := range attrs["memberof"] {
		leaf, err := leafName(dn)
		if err != nil {
			log.Printf("[Directory] Skipping malformed group %q for %s: %v", dn, u.ShortID, err)
			continue
		}
		if e, ok := parseEnrollment(dn, leaf); ok {
			u.Enrollments = append(u.Enrollments, e)
			continue
		}
		u.Groups = append(u.Groups, leaf)
	}

	u.Role = n.role(u.Groups, u.Enrollments)
	u.UpdateNameInformation()
	return u
}

// leafName returns the value of the leftmost RDN of dn.
func leafName(dn string) (string, error) {
	parsed, err := ldap.ParseDN(dn)
	if err != nil {
		return "", err
	}
	if len(parsed.RDNs) == 0 || len(parsed.RDNs[0].Attributes) == 0 {
		return "", errors.New("empty distinguished name")
	}
	return parsed.RDNs[0].Attributes[0].Value, nil
}

func parseEnrollment(dn, leaf string) (models.Enrollment, bool) {
	m := semesterPattern.FindStringSubmatch(dn)
	if m == nil {
		return models.Enrollment{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return models.Enrollment{}, false
	}
	e, ok := models.NewEnrollment(m[1], year)
	if !ok {
		return models.Enrollment{}, false
	}
	if !semesterLeafPattern.MatchString(leaf) {
		e.Course = leaf
	}
	return e, true
}

func parseStudentID(s string) int {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return models.StudentIDUnknown
	}
	return id
}

func parseWhenCreated(s string) time.Time {
	for _, layout := range whenCreatedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
