package service

import (
	"context"
	"strings"
	"time"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/sqlerr"
	"github.com/rs/zerolog"
)

// Rule violation messages, in the order the rules are evaluated. A
// request violating several rules yields one ValidationError carrying
// one message per rule, in this order.
const (
	msgNameEmpty       = "name must not be empty"
	msgEmailInvalid    = "email is invalid: must contain '@'"
	msgBirthDateFuture = "birth date must not be in the future"
	msgIDNotPositive   = "user id must be a positive integer"

	msgEmailInUse   = "email is already in use"
	msgUserNotFound = "user not found"
)

// UserStore is the persistence gateway contract the service depends on.
// Lookups report absence as (nil, nil); all three operations may fail
// with an opaque technical error.
type UserStore interface {
	Insert(ctx context.Context, user repository.NewUser) (*repository.User, error)
	FindByID(ctx context.Context, id int32) (*repository.User, error)
	FindByEmail(ctx context.Context, email string) (*repository.User, error)
}

// UserService enforces the user domain rules on top of a UserStore.
type UserService struct {
	store UserStore
	log   *zerolog.Logger

	// now is injected so tests can pin the clock for the future-date rule.
	now func() time.Time
}

// NewUserService constructs a UserService.
func NewUserService(store UserStore, log *zerolog.Logger) *UserService {
	return &UserService{
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser validates the input, enforces email uniqueness, and
// persists the user.
//
// Input rules are checked collectively, not short-circuited: a request
// violating several rules fails with a single ValidationError listing
// every offending field. When input is valid, a duplicate email fails
// with a BusinessError; the pre-check via FindByEmail gives the clean
// message, and an insert-time unique violation (the check-then-insert
// race) is re-classified into the same BusinessError since the storage
// constraint is the authoritative guard.
func (s *UserService) CreateUser(ctx context.Context, user repository.NewUser) (*repository.User, error) {
	var causes []string

	if strings.TrimSpace(user.Name) == "" {
		causes = append(causes, msgNameEmpty)
	}
	if !strings.Contains(user.Email, "@") {
		causes = append(causes, msgEmailInvalid)
	}
	if user.BirthDate.After(s.now()) {
		causes = append(causes, msgBirthDateFuture)
	}

	if len(causes) > 0 {
		return nil, errs.NewValidationError(causes...)
	}

	existing, err := s.store.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, errs.NewInternalError(err)
	}
	if existing != nil {
		return nil, errs.NewBusinessError(msgEmailInUse)
	}

	created, err := s.store.Insert(ctx, user)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			// Another request inserted the same email between the
			// pre-check and our insert; the constraint caught it.
			s.log.Warn().Str("email", user.Email).Msg("duplicate email caught by unique constraint")
			return nil, errs.NewBusinessError(msgEmailInUse)
		}
		return nil, errs.NewInternalError(err)
	}

	return created, nil
}

// GetUser fetches a user by id.
//
// A non-positive id is invalid input, not a missing resource, so it
// fails with a ValidationError before touching storage. Absence maps to
// NotFoundError; technical failure to InternalError.
func (s *UserService) GetUser(ctx context.Context, id int32) (*repository.User, error) {
	if id <= 0 {
		return nil, errs.NewValidationError(msgIDNotPositive)
	}

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewInternalError(err)
	}
	if user == nil {
		return nil, errs.NewNotFoundError(msgUserNotFound)
	}

	return user, nil
}
