package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/myryde/myryde-backend/internal/users"
	"github.com/myryde/myryde-backend/pkg/config"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/security"
)

// Service exposes account CRUD plus session management over the two storage
// keys: the user collection and the session pointer.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*users.User, error)
	Login(ctx context.Context, identifier, password string) (*users.User, error)
	CurrentUser(ctx context.Context) (*users.User, bool)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*users.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type userStore interface {
	Load(ctx context.Context) ([]users.User, error)
	Save(ctx context.Context, records []users.User) error
}

type sessionPointer interface {
	Put(ctx context.Context, user users.User) error
	Current(ctx context.Context) (*users.User, bool)
	Clear(ctx context.Context) error
	Present(ctx context.Context) bool
}

type service struct {
	store       userStore
	session     sessionPointer
	passwordCfg config.PasswordConfig
	now         func() time.Time
	newID       func() string
}

// ServiceParams bundles the dependencies required to build the auth service.
type ServiceParams struct {
	UserStore      userStore
	SessionPointer sessionPointer
	PasswordConfig config.PasswordConfig

	// Now and NewID are overridable for tests; they default to the wall
	// clock and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

// NewService constructs the auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserStore == nil {
		return nil, fmt.Errorf("user store is required")
	}
	if params.SessionPointer == nil {
		return nil, fmt.Errorf("session pointer is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	newID := params.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &service{
		store:       params.UserStore,
		session:     params.SessionPointer,
		passwordCfg: params.PasswordConfig,
		now:         now,
		newID:       newID,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*users.User, error) {
	if !security.CheckStrength(req.Password).Meets(s.passwordCfg.MinStrengthScore) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is too weak")
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "registration failed")
	}

	// Uniqueness is checked here only, with case-sensitive exact matches.
	for _, existing := range records {
		if existing.Email == req.Email || existing.Username == req.Username {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "user already exists with this email or username")
		}
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "registration failed")
	}

	user := users.User{
		ID:           s.newID(),
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Gender:       req.Gender,
		JoinDate:     s.now().UTC().Format(time.RFC3339),
		PasswordHash: passwordHash,
	}

	records = append(records, user)
	if err := s.store.Save(ctx, records); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "registration failed")
	}
	if err := s.session.Put(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "registration failed")
	}

	return &user, nil
}

func (s *service) Login(ctx context.Context, identifier, password string) (*users.User, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "login failed")
	}

	for i := range records {
		user := records[i]
		if user.Email != identifier && user.Username != identifier {
			continue
		}

		// Demo login: the credential is accepted without consulting the
		// stored hash. The hash is still written at registration so
		// verification can be turned on without a data migration.
		_ = password

		if err := s.session.Put(ctx, user); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "login failed")
		}
		return &user, nil
	}

	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

func (s *service) CurrentUser(ctx context.Context) (*users.User, bool) {
	return s.session.Current(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*users.User, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "profile update failed")
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}

	merged := mergeProfile(records[idx], req)
	records[idx] = merged

	if err := s.store.Save(ctx, records); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "profile update failed")
	}
	if err := s.session.Put(ctx, merged); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "profile update failed")
	}

	return &merged, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "logout failed")
	}
	return nil
}

func (s *service) IsAuthenticated(ctx context.Context) bool {
	return s.session.Present(ctx)
}

// mergeProfile applies a shallow field overwrite: provided fields replace,
// omitted fields keep their prior values. ID, joinDate, and the password hash
// are never touched here.
func mergeProfile(base users.User, req UpdateProfileRequest) users.User {
	if req.FullName != nil {
		base.FullName = *req.FullName
	}
	if req.Username != nil {
		base.Username = *req.Username
	}
	if req.Email != nil {
		base.Email = *req.Email
	}
	if req.Phone != nil {
		base.Phone = *req.Phone
	}
	if req.Location != nil {
		base.Location = *req.Location
	}
	if req.Gender != nil {
		base.Gender = *req.Gender
	}
	if req.ProfileImage != nil {
		base.ProfileImage = *req.ProfileImage
	}
	return base
}
