package service

import "github.com/google/uuid"

// Authorize decides write eligibility for a resource. Reads never consult
// it: anyone, including anonymous callers, may list and retrieve. A nil
// identity is an unauthenticated caller.
func Authorize(identity *uuid.UUID, ownerID uuid.UUID) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if *identity != ownerID {
		return ErrForbidden
	}
	return nil
}
