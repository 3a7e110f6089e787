package directory

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// Attributes requested for every user search.
var userAttributes = []string{
	"displayName",
	"givenName",
	"sn",
	"sAMAccountName",
	"userPrincipalName",
	"mail",
	"middleName",
	"department",
	"employeeID",
	"whenCreated",
	"memberOf",
}

const (
	attrShortID = "sAMAccountName"
	attrLongID  = "userPrincipalName"
)

// userFilter matches the user whose attr equals value exactly.
func userFilter(attr, value string) string {
	return fmt.Sprintf("(&(objectClass=user)(%s=%s))", attr, ldap.EscapeFilter(value))
}

// suggestFilter matches users whose long or short id starts with like.
func suggestFilter(like string) string {
	escaped := ldap.EscapeFilter(like)
	return fmt.Sprintf(
		"(&(objectClass=user)(|(userPrincipalName=%s*)(samaccountname=%s*)))",
		escaped,
		escaped,
	)
}
