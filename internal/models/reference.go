package models

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Reference ids are human-readable incident handles of the form
// INC-<year>-<3-digit-number>, e.g. INC-2026-417.
var referenceIDPattern = regexp.MustCompile(`^INC-\d{4}-\d{3}$`)

// GenerateReferenceID mints a reference id for the current year with a
// random suffix in [100, 999]. Uniqueness is enforced by the database
// constraint, not here; callers retry on conflict.
func GenerateReferenceID() string {
	return fmt.Sprintf("INC-%d-%d", time.Now().Year(), rand.Intn(900)+100)
}

// ValidReferenceID reports whether s is a well-formed reference id.
func ValidReferenceID(s string) bool {
	return referenceIDPattern.MatchString(s)
}
