package repository

import (
	"context"

	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/model"
	"github.com/deppfellow/go-adverts/internal/sqlerr"
	"github.com/jmoiron/sqlx"
)

const (
	getUserQuery = `SELECT id, name, email, password FROM "user" WHERE id = ?`

	insertUserQuery = `INSERT INTO "user" (name, email, password) VALUES (?, ?, ?) RETURNING id`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns the user or a 404 "User not found".
func (r *UserRepository) GetByID(ctx context.Context, sess *database.Session, id int64) (*model.User, error) {
	var user model.User
	if err := sess.Get(ctx, &user, getUserQuery, id); err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return &user, nil
}

// Create inserts user in its own transaction and sets user.ID.
// The transaction is rolled back on any failure.
func (r *UserRepository) Create(ctx context.Context, sess *database.Session, user *model.User) error {
	return sess.InTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx, tx.Rebind(insertUserQuery), user.Name, user.Email, user.Password)
		if err := row.Scan(&user.ID); err != nil {
			return sqlerr.Wrap(err)
		}
		return nil
	})
}
