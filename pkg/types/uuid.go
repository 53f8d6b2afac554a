package types

import "github.com/google/uuid"

// UUID is an RFC 4122 UUID, as used by TR-181 software-module objects.
type UUID = uuid.UUID

// ParseUUID parses the textual form of a UUID.
func ParseUUID(s string) (UUID, error) {
	return uuid.Parse(s)
}
