package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"golang.org/x/crypto/bcrypt"
)

type Users struct {
	base
}

func (s *Users) Find(ctx context.Context, userName string) *models.User {
	return lookup(ctx, s.base, "findUser", func(ctx context.Context) (*models.User, error) {
		return s.store.Users().FindByUserName(ctx, userName)
	})
}

// Authenticate checks a password against the stored bcrypt hash. Unknown
// users and wrong passwords fail the same way.
func (s *Users) Authenticate(ctx context.Context, userName, password string) (*models.User, error) {
	u := s.Find(ctx, userName)
	if u == nil {
		return nil, &Error{Kind: ErrUnauthorized, Entity: entityUser, Key: userName, msg: "Invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, &Error{Kind: ErrUnauthorized, Entity: entityUser, Key: userName, msg: "Invalid credentials"}
	}
	return u, nil
}

// EnsureUser creates the user unless one with that name exists. It reports
// whether a user was created.
func (s *Users) EnsureUser(ctx context.Context, userName, email, password string, role models.Role) (bool, error) {
	const op = "ensureUser"
	if s.Find(ctx, userName) != nil {
		return false, nil
	}
	if password == "" {
		return false, invalidf(entityUser, userName, "User %s needs a password", userName)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, invalidf(entityUser, userName, "User %s password: %v", userName, err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.Users().Create(ctx, u); err != nil {
		return false, s.writeFailed(op, entityUser, userName, err)
	}
	s.log.Info().Str("op", op).Str("user", userName).Str("role", string(role)).Msg("user created")
	return true, nil
}
