package directory

import (
	"testing"
	"time"

	"github.com/tepidprint/tepid/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRolePolicy_Role(t *testing.T) {
	policy := RolePolicy{
		EldersGroup:       "elders",
		CTFersGroups:      []string{"ctf-a", "ctf-b"},
		UsersGroups:       []string{"students"},
		ExchangeGroupBase: "exchange-",
		Now: func() time.Time {
			return time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
		},
	}

	tests := []struct {
		name   string
		groups []string
		want   string
	}{
		{name: "elder wins over ctfer", groups: []string{"ctf-a", "elders"}, want: models.RoleElder},
		{name: "any ctfer group", groups: []string{"ctf-b"}, want: models.RoleCTFer},
		{name: "user group", groups: []string{"students"}, want: models.RoleUser},
		{name: "current exchange group", groups: []string{"exchange-2024F"}, want: models.RoleUser},
		{name: "past exchange group", groups: []string{"exchange-2024W"}, want: models.RoleNone},
		{name: "no groups", groups: nil, want: models.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Role(tt.groups, nil))
		})
	}
}

func TestRolePolicy_EmptyEldersGroupMatchesNothing(t *testing.T) {
	assert.Equal(t, models.RoleNone, RolePolicy{}.Role([]string{""}, nil))
}

func TestRolePolicy_CurrentExchangeGroup(t *testing.T) {
	assert.Equal(t, "", RolePolicy{}.CurrentExchangeGroup())

	p := RolePolicy{
		ExchangeGroupBase: "ex",
		Now:               func() time.Time { return time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC) },
	}
	assert.Equal(t, "ex2025W", p.CurrentExchangeGroup())
}
