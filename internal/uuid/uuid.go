// Package uuid provides a UUID that can be bound from URI and query
// parameters by gin.
package uuid

import (
	"github.com/expense-guard/backend/internal/httputil"
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements gin's binding.BindUnmarshaler.
//
// An empty parameter is the Nil UUID, invalid ones return
// httputil.ErrInvalidUUID.
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := httputil.UUIDFromString(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
