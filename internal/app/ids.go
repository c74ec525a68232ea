package app

import "github.com/google/uuid"

func newID() string {
	return uuid.NewString()
}

// canonicalID returns the canonical form of a uuid, or false when id is not one.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
