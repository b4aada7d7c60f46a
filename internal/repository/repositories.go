package repository

// Repositories is a container for all repository instances.
//
// Repositories hold no connection of their own: the request session is
// passed into every call.
type Repositories struct {
	Users   *UserRepository
	Adverts *AdvertRepository
}

// NewRepositories constructs the repository container.
func NewRepositories() *Repositories {
	return &Repositories{
		Users:   NewUserRepository(),
		Adverts: NewAdvertRepository(),
	}
}
