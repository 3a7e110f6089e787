package directory

import (
	"slices"
	"time"

	"github.com/tepidprint/tepid/internal/models"
)

// RolePolicy grants roles from group membership. The first matching rule
// wins: elders, then CTFers, then users.
type RolePolicy struct {
	EldersGroup       string
	CTFersGroups      []string
	UsersGroups       []string
	ExchangeGroupBase string
	Now               func() time.Time
}

// Role implements RoleFunc. Enrollments do not grant roles on their own.
func (p RolePolicy) Role(groups []string, _ []models.Enrollment) string {
	if p.EldersGroup != "" && slices.Contains(groups, p.EldersGroup) {
		return models.RoleElder
	}
	if containsAny(groups, p.CTFersGroups) {
		return models.RoleCTFer
	}
	if containsAny(groups, p.UsersGroups) {
		return models.RoleUser
	}
	if g := p.CurrentExchangeGroup(); g != "" && slices.Contains(groups, g) {
		return models.RoleUser
	}
	return models.RoleNone
}

// CurrentExchangeGroup returns the name of this term's exchange student
// group, or "" when no base name is configured.
func (p RolePolicy) CurrentExchangeGroup() string {
	if p.ExchangeGroupBase == "" {
		return ""
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return p.ExchangeGroupBase + models.ExchangeTermCode(now())
}

func containsAny(groups, wanted []string) bool {
	for _, w := range wanted {
		if slices.Contains(groups, w) {
			return true
		}
	}
	return false
}
