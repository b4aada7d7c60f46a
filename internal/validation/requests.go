package validation

import "github.com/labstack/echo/v4"

// idRequest is embedded by every request addressed by a path id.
type idRequest struct {
	ID int64
}

func (r *idRequest) BindPath(c echo.Context) (err error) {
	r.ID, err = BindID(c, "id")
	return err
}

func (r *idRequest) Validate() error {
	return nil
}

// bodyRequest is embedded by every request carrying a JSON body.
type bodyRequest struct {
	raw []byte
}

func (r *bodyRequest) SetBody(raw []byte) {
	r.raw = raw
}

// GetUserRequest is GET /user/:id.
type GetUserRequest struct {
	idRequest
}

// GetAdvertRequest is GET /advert/:id.
type GetAdvertRequest struct {
	idRequest
}

// DeleteAdvertRequest is DELETE /advert/:id.
type DeleteAdvertRequest struct {
	idRequest
}

// CreateUserRequest is POST /user.
type CreateUserRequest struct {
	bodyRequest

	Name     string
	Email    string
	Password string
}

func (r *CreateUserRequest) Validate() error {
	fields, err := CreateUser.Validate(r.raw)
	if err != nil {
		return err
	}

	r.Name = fields.String("name")
	r.Email = fields.String("email")
	r.Password = fields.String("password")
	return nil
}

// CreateAdvertRequest is POST /advert.
type CreateAdvertRequest struct {
	bodyRequest

	Title   string
	Note    string
	OwnerID int64
}

func (r *CreateAdvertRequest) Validate() error {
	fields, err := CreateAdvert.Validate(r.raw)
	if err != nil {
		return err
	}

	r.Title = fields.String("title")
	r.Note = fields.String("note")
	r.OwnerID = fields.Int("owner_id")
	return nil
}
