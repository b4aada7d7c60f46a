package repository

import (
	"context"
	"time"

	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/deppfellow/go-adverts/internal/model"
	"github.com/deppfellow/go-adverts/internal/sqlerr"
	"github.com/jmoiron/sqlx"
)

const (
	getAdvertQuery = `
		SELECT a.id, a.title, a.note, a.created_at, a.owner_id, u.name AS owner_name
		FROM advert a
		JOIN "user" u ON u.id = a.owner_id
		WHERE a.id = ?`

	insertAdvertQuery = `INSERT INTO advert (title, note, created_at, owner_id) VALUES (?, ?, ?, ?) RETURNING id`

	deleteAdvertQuery = `DELETE FROM advert WHERE id = ?`
)

type AdvertRepository struct {
	// now stamps created_at. Replaced in tests.
	now func() time.Time
}

func NewAdvertRepository() *AdvertRepository {
	return &AdvertRepository{
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// GetByID returns the advert with its owner's name, or a 404 "Advert not found".
func (r *AdvertRepository) GetByID(ctx context.Context, sess *database.Session, id int64) (*model.Advert, error) {
	var advert model.Advert
	if err := sess.Get(ctx, &advert, getAdvertQuery, id); err != nil {
		return nil, notFoundOr(err, "Advert not found")
	}
	advert.CreatedAt = advert.CreatedAt.UTC()
	return &advert, nil
}

// Create inserts advert in its own transaction, stamping CreatedAt and
// setting ID. OwnerName is left for the caller to resolve.
func (r *AdvertRepository) Create(ctx context.Context, sess *database.Session, advert *model.Advert) error {
	advert.CreatedAt = r.now()

	return sess.InTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx, tx.Rebind(insertAdvertQuery),
			advert.Title, advert.Note, advert.CreatedAt, advert.OwnerID)
		if err := row.Scan(&advert.ID); err != nil {
			return sqlerr.Wrap(err)
		}
		return nil
	})
}

// Delete removes the advert in its own transaction. A missing row is a 404.
func (r *AdvertRepository) Delete(ctx context.Context, sess *database.Session, id int64) error {
	return sess.InTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, tx.Rebind(deleteAdvertQuery), id)
		if err != nil {
			return sqlerr.Wrap(err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.NewNotFoundError("Advert not found", nil)
		}
		return nil
	})
}
