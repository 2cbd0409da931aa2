// Package users contains the user-record store: the Repository contract and
// its Postgres implementation. The store owns user records exclusively; the
// rest of the server only finds and inserts them.
package users

import (
	"context"

	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new user record and returns it with the assigned
	// identifier. A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail finds a user by exact email match. A missing record
	// yields common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
