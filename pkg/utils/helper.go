package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ParseIndex converts a path segment into a non-negative seat index
func ParseIndex(value string) (int, error) {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid seat index %q", value)
	}

	if result < 0 {
		return 0, fmt.Errorf("invalid seat index %d", result)
	}

	return result, nil
}

// ParseUUID parses a session ID
func ParseUUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session ID %q: %w", value, err)
	}
	return id, nil
}
