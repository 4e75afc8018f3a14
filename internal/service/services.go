package service

import (
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Users *UserService
}

// NewServices constructs the service container, wiring each service to
// its repositories and the shared application resources.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users: NewUserService(repos.Users, s.Logger),
	}
}
