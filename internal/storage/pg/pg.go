// Package pg implements the storage interfaces on PostgreSQL via pgx.
package pg

import "github.com/mpavlovic/devfolio/internal/apperr"

func errNotFound(resource string) error {
	return apperr.NewNotFound(resource)
}
