package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		identifier string
		want       IdentifierKind
	}{
		{"12345", KindStudentID},
		{"260000001", KindStudentID},
		{"john.doe", KindLongID},
		{"john.doe@example.edu", KindLongID},
		{"jdoe3", KindShortID},
		{"12a45", KindShortID},
		{"", KindShortID},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.identifier))
		})
	}
}

func TestIdentifierKind_String(t *testing.T) {
	assert.Equal(t, "student_id", KindStudentID.String())
	assert.Equal(t, "long_id", KindLongID.String())
	assert.Equal(t, "short_id", KindShortID.String())
}

func TestCanonicalLongID(t *testing.T) {
	assert.Equal(t, "john.doe@example.edu", CanonicalLongID("john.doe", "example.edu"))
	assert.Equal(t, "john.doe@other.edu", CanonicalLongID("john.doe@other.edu", "example.edu"))
	assert.Equal(t, "john.doe", CanonicalLongID("john.doe", ""))
}
