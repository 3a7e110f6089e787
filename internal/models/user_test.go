package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_UpdateNameInformation(t *testing.T) {
	tests := []struct {
		name           string
		user           User
		wantSalutation string
		wantRealName   string
	}{
		{
			name:           "given and last only",
			user:           User{GivenName: "John", LastName: "Doe"},
			wantSalutation: "John",
			wantRealName:   "John Doe",
		},
		{
			name: "preferred names reversed",
			user: User{
				GivenName:     "Jonathan",
				LastName:      "Doe",
				PreferredName: []string{"Doe", "Jon"},
			},
			wantSalutation: "Jon",
			wantRealName:   "Jon Doe",
		},
		{
			name: "nickname wins salutation",
			user: User{
				GivenName:     "Jonathan",
				LastName:      "Doe",
				Nickname:      "JD",
				PreferredName: []string{"Doe", "Jon"},
			},
			wantSalutation: "JD",
			wantRealName:   "Jon Doe",
		},
		{
			name:           "empty record",
			user:           User{},
			wantSalutation: "",
			wantRealName:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			u.UpdateNameInformation()
			assert.Equal(t, tt.wantSalutation, u.Salutation)
			assert.Equal(t, tt.wantRealName, u.RealName)
		})
	}
}

func TestUser_UpdateNameInformationKeepsPreferredOrder(t *testing.T) {
	u := User{PreferredName: []string{"Doe", "Jon"}}
	u.UpdateNameInformation()
	assert.Equal(t, []string{"Doe", "Jon"}, u.PreferredName)
}

func TestUser_Clone(t *testing.T) {
	orig := &User{
		ShortID:       "jdoe3",
		Groups:        []string{"A"},
		PreferredName: []string{"Jon"},
		Enrollments:   []Enrollment{{Season: SeasonFall, Year: 2024}},
	}
	clone := orig.Clone()
	clone.Groups[0] = "B"
	clone.PreferredName[0] = "X"
	clone.Enrollments[0].Year = 1999

	assert.Equal(t, "A", orig.Groups[0])
	assert.Equal(t, "Jon", orig.PreferredName[0])
	assert.Equal(t, 2024, orig.Enrollments[0].Year)
	assert.Nil(t, (*User)(nil).Clone())
}

func TestUser_HasRole(t *testing.T) {
	elder := &User{Role: RoleElder}
	user := &User{Role: RoleUser}
	none := &User{}

	assert.True(t, elder.HasRole(RoleCTFer))
	assert.True(t, user.HasRole(RoleUser))
	assert.False(t, user.HasRole(RoleCTFer))
	assert.False(t, none.HasRole(RoleUser))
}

func TestUser_LongIDLocalPart(t *testing.T) {
	assert.Equal(t, "john.doe", (&User{LongID: "john.doe@example.edu"}).LongIDLocalPart())
	assert.Equal(t, "", (&User{}).LongIDLocalPart())
}

func TestNewEnrollment(t *testing.T) {
	e, ok := NewEnrollment("FALL", 2024)
	assert.True(t, ok)
	assert.Equal(t, Enrollment{Season: SeasonFall, Year: 2024}, e)
	assert.Equal(t, "Fall 2024", e.String())

	_, ok = NewEnrollment("spring", 2024)
	assert.False(t, ok)
}

func TestExchangeTermCode(t *testing.T) {
	assert.Equal(t, "2024W", ExchangeTermCode(time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024F", ExchangeTermCode(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "not expired", expiresAt: now.Add(time.Hour), want: false},
		{name: "exactly at expiry", expiresAt: now, want: true},
		{name: "zero time is expired", expiresAt: time.Time{}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{ExpiresAt: tt.expiresAt}
			if got := s.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
