package model

// User is a row of the "user" table.
//
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Email    *string `db:"email" json:"email"`
	Password string  `db:"password" json:"-"`
}
