package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
)

const (
	// TokenTTL is how long a signed bearer token stays valid.
	TokenTTL = time.Hour

	// resolvedUserTTL bounds how long a token to user resolution may be served
	// from cache before hitting the database again.
	resolvedUserTTL = time.Minute
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	c      *common.Cache
	tokens *TokenManager
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"-"`

	// Blogs holds the summaries of the blogs owned by this user. Populated on
	// the user read paths only.
	Blogs []OwnedBlog `json:"blogs"`
}

type OwnedBlog struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}
