package repository

import (
	"github.com/deppfellow/user-api/internal/server"
)

// Repositories is a container for all repository instances, constructed
// once at startup and passed by reference into the layers above. No
// ambient global lookup exists; everything flows through this bundle.
type Repositories struct {
	Users *UserRepository
}

// NewRepositories constructs the repository container from the
// application's shared resources.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB.Pool),
	}
}
