package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid username or password")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, c *common.Cache, tokens *TokenManager) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		c:      c,
		tokens: tokens,
	}
}

// CreateUser registers a new user account and publishes a user.registered
// event. Username uniqueness is guaranteed by the database constraint, so two
// concurrent registrations of the same name cannot both succeed.
func (s *UserService) CreateUser(ctx context.Context, username, name, password string) (*User, error) {
	v := common.NewValidator()
	validateNewUser(v, username, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Password: Password{Plain: password},
		Blogs:    []OwnedBlog{},
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	data := struct {
		Username string
		Name     string
	}{
		Username: u.Username,
		Name:     u.Name,
	}

	eventData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, eventData, common.UserRegisteredKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser checks the credentials and returns a signed bearer token together
// with the resolved user.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (string, *User, error) {
	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return "", nil, ErrAuthenticationFailure
		default:
			return "", nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrAuthenticationFailure
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GetUserByToken verifies a bearer token and resolves the embedded identity
// to a live user record. A token whose user no longer exists is invalid.
// Signature and expiry are checked on every call; only the database
// resolution is cached, so an expired token is rejected even while its last
// resolution is still cached.
func (s *UserService) GetUserByToken(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if cached, ok := s.c.Get(common.CacheKeyUserByToken(token)); ok {
		if user, ok := cached.(*User); ok {
			return user, nil
		}
	}

	user, err := s.m.getUserByID(ctx, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrInvalidToken
		default:
			return nil, err
		}
	}

	s.c.Set(common.CacheKeyUserByToken(token), user, resolvedUserTTL)

	return user, nil
}

// GetUser returns one user with their owned blogs resolved.
func (s *UserService) GetUser(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, ErrNotFound
	}

	user, err := s.m.getUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blogs, err := s.m.getOwnedBlogs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Blogs = blogs

	return user, nil
}

// ListUsers returns all users, each with their owned blogs resolved.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	return s.m.listUsers(ctx)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
