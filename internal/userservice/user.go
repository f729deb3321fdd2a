package userservice

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func (m *UserModel) insertUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	args := []any{
		u.Username,
		u.Name,
		u.Password.hash,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case err.Error() == "pq: duplicate key value violates unique constraint \"users_username_key\"":
			return ErrDuplicateUsername
		default:
			return err
		}
	}
	return nil
}

func (m *UserModel) getUserByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, username, name, created_at
		FROM users
		WHERE id = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, password_hash, created_at
		FROM users
		WHERE username = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Password.hash, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

// getOwnedBlogs returns the blog summaries owned by one user, oldest first.
func (m *UserModel) getOwnedBlogs(ctx context.Context, userID int) ([]OwnedBlog, error) {
	query := `
		SELECT id, title, author, url
		FROM blogs
		WHERE user_id = $1
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []OwnedBlog{}
	for rows.Next() {
		var b OwnedBlog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// listUsers returns every user with their owned blogs resolved in one extra
// query rather than one per user.
func (m *UserModel) listUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, username, name, created_at
		FROM users
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	index := make(map[int]int)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Blogs = []OwnedBlog{}
		index[u.ID] = len(users)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	blogQuery := `
		SELECT id, title, author, url, user_id
		FROM blogs
		ORDER BY id`

	blogRows, err := m.db.QueryContext(ctx, blogQuery)
	if err != nil {
		return nil, err
	}
	defer blogRows.Close()

	for blogRows.Next() {
		var b OwnedBlog
		var ownerID int
		if err := blogRows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &ownerID); err != nil {
			return nil, err
		}
		if i, ok := index[ownerID]; ok {
			users[i].Blogs = append(users[i].Blogs, b)
		}
	}

	if err := blogRows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
