package validation

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 8

// CreateUser is the POST /user payload.
var CreateUser = Schema{
	{Name: "name", Kind: KindString},
	{Name: "email", Kind: KindString},
	{Name: "password", Kind: KindString, Checks: []Check{MinLength(MinPasswordLength)}},
}

// CreateAdvert is the POST /advert payload.
var CreateAdvert = Schema{
	{Name: "title", Kind: KindString},
	{Name: "note", Kind: KindString},
	{Name: "owner_id", Kind: KindInteger},
}
