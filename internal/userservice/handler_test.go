package userservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sushihentaime/bloglist/internal/common"
)

type MockMessageProducer struct {
	mock.Mock
}

func (m *MockMessageProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	args := m.Called(ctx, msg, key, exchange)
	return args.Error(0)
}

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB) {
	t.Helper()

	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	producer := new(MockMessageProducer)
	producer.On("Publish", mock.Anything, mock.Anything, common.UserRegisteredKey, common.UserExchange).Return(nil)

	tokens := NewTokenManager("test-secret", time.Hour)

	return NewUserService(db, producer, cache, tokens), db
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	assert.NoError(t, err)
	return count
}

func TestCreateUser(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	t.Run("valid user", func(t *testing.T) {
		user, err := s.CreateUser(ctx, "mluukkai", "Matti Luukkainen", "salainen")
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "mluukkai", user.Username)
		assert.Equal(t, 1, countUsers(t, db))
	})

	t.Run("short username never persisted", func(t *testing.T) {
		before := countUsers(t, db)

		_, err := s.CreateUser(ctx, "ab", "", "salainen")

		var validationErr common.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "username must be at least 3 characters long", validationErr.First())
		assert.Equal(t, before, countUsers(t, db))

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM users WHERE username = 'ab'").Scan(&count)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("duplicate username", func(t *testing.T) {
		before := countUsers(t, db)

		_, err := s.CreateUser(ctx, "mluukkai", "Someone Else", "secret")
		assert.ErrorIs(t, err, ErrDuplicateUsername)
		assert.Equal(t, before, countUsers(t, db))
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		var hash []byte
		err := db.QueryRow("SELECT password_hash FROM users WHERE username = 'mluukkai'").Scan(&hash)
		assert.NoError(t, err)
		assert.NotEqual(t, []byte("salainen"), hash)
		assert.NotEmpty(t, hash)
	})
}

func TestLoginUser(t *testing.T) {
	s, _ := setupTestEnvironment(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "mluukkai", "Matti Luukkainen", "salainen")
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := s.LoginUser(ctx, "mluukkai", "salainen")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "mluukkai", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := s.LoginUser(ctx, "mluukkai", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailure)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := s.LoginUser(ctx, "nobody", "salainen")
		assert.ErrorIs(t, err, ErrAuthenticationFailure)
	})
}

func TestGetUserByToken(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "mluukkai", "Matti Luukkainen", "salainen")
	assert.NoError(t, err)

	token, _, err := s.LoginUser(ctx, "mluukkai", "salainen")
	assert.NoError(t, err)

	t.Run("valid token resolves to user", func(t *testing.T) {
		user, err := s.GetUserByToken(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "mluukkai", user.Username)
	})

	t.Run("cached resolution is identical", func(t *testing.T) {
		first, err := s.GetUserByToken(ctx, token)
		assert.NoError(t, err)

		second, err := s.GetUserByToken(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := s.GetUserByToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token is rejected even when cached", func(t *testing.T) {
		expiredManager := NewTokenManager("test-secret", -time.Minute)
		expired, err := expiredManager.Sign(created)
		assert.NoError(t, err)

		// a resolution cached before expiry must not outlive the token
		s.c.Set(common.CacheKeyUserByToken(expired), created, resolvedUserTTL)

		_, err = s.GetUserByToken(ctx, expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token of a deleted user", func(t *testing.T) {
		other, err := s.CreateUser(ctx, "shortlived", "", "secret")
		assert.NoError(t, err)

		otherToken, _, err := s.LoginUser(ctx, "shortlived", "secret")
		assert.NoError(t, err)

		_, err = db.Exec("DELETE FROM users WHERE id = $1", other.ID)
		assert.NoError(t, err)

		_, err = s.GetUserByToken(ctx, otherToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGetUserAndListUsers(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "mluukkai", "Matti Luukkainen", "salainen")
	assert.NoError(t, err)

	_, err = db.Exec("INSERT INTO blogs (title, author, url, likes, user_id) VALUES ($1, $2, $3, $4, $5)",
		"Owned Blog", "Author", "https://example.com", 4, created.ID)
	assert.NoError(t, err)

	t.Run("get user resolves owned blogs", func(t *testing.T) {
		user, err := s.GetUser(ctx, created.ID)
		assert.NoError(t, err)
		assert.Len(t, user.Blogs, 1)
		assert.Equal(t, "Owned Blog", user.Blogs[0].Title)
		assert.Equal(t, "https://example.com", user.Blogs[0].URL)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.GetUser(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list users resolves owned blogs", func(t *testing.T) {
		users, err := s.ListUsers(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Len(t, users[0].Blogs, 1)
		assert.Equal(t, "Owned Blog", users[0].Blogs[0].Title)
	})
}
