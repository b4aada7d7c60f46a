package model

import "time"

// Advert is a row of the advert table joined with its owner's name.
//
// OwnerID is the stored foreign key; clients only ever see the owner's name.
type Advert struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Note      *string   `db:"note" json:"note"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	OwnerID   int64     `db:"owner_id" json:"-"`
	OwnerName string    `db:"owner_name" json:"owner"`
}
