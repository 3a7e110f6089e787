package services

import (
	"regexp"
	"strings"
)

// IdentifierKind tells which key an identifier names.
type IdentifierKind int

const (
	KindShortID IdentifierKind = iota
	KindLongID
	KindStudentID
)

var studentIDPattern = regexp.MustCompile(`^[0-9]+$`)

func (k IdentifierKind) String() string {
	switch k {
	case KindStudentID:
		return "student_id"
	case KindLongID:
		return "long_id"
	default:
		return "short_id"
	}
}

// Classify returns KindStudentID for all-digit identifiers, KindLongID for
// identifiers containing a dot and KindShortID for anything else.
func Classify(identifier string) IdentifierKind {
	switch {
	case studentIDPattern.MatchString(identifier):
		return KindStudentID
	case strings.Contains(identifier, "."):
		return KindLongID
	default:
		return KindShortID
	}
}

// CanonicalLongID appends "@"+domain to long ids given without a domain.
func CanonicalLongID(identifier, domain string) string {
	if strings.Contains(identifier, "@") || domain == "" {
		return identifier
	}
	return identifier + "@" + domain
}
