package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/bloglist/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// CreateBlog stores a new blog owned by ownerID. A missing likes field
// defaults to zero through JSON decoding.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest, ownerID int) (*Blog, error) {
	v := common.NewValidator()
	validateBlog(v, req.Title, req.URL, req.Likes)
	validateInt(v, ownerID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		User:   Owner{ID: ownerID},
	}

	if err := s.m.insert(ctx, &blog); err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlogs())

	return &blog, nil
}

// GetBlogByID returns a blog post by its ID with the owner resolved.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, ErrRecordNotFound
	}

	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		if blog, ok := cached.(*Blog); ok {
			return blog, nil
		}
	}

	blog, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), blog)

	return blog, nil
}

// GetBlogs returns all blogs with owner summaries.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyBlogs()); ok {
		if blogs, ok := cached.([]Blog); ok {
			return blogs, nil
		}
	}

	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlogs(), blogs)

	return blogs, nil
}

type UpdateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// UpdateBlog replaces title, author, url and likes. Only the owner may
// update a blog.
func (s *BlogService) UpdateBlog(ctx context.Context, id int, req *UpdateBlogRequest, requesterID int) (*Blog, error) {
	v := common.NewValidator()
	validateBlog(v, req.Title, req.URL, req.Likes)
	validateInt(v, id, "id")
	validateInt(v, requesterID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	current, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.User.ID != requesterID {
		return nil, ErrNotOwner
	}

	blog := Blog{
		ID:     id,
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		User:   current.User,
	}

	if err := s.m.updateBlog(ctx, &blog); err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))
	s.c.Delete(common.CacheKeyBlogs())

	return &blog, nil
}

// DeleteBlog removes a blog. Only the owner may delete it.
func (s *BlogService) DeleteBlog(ctx context.Context, id, requesterID int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	validateInt(v, requesterID, "user_id")
	if !v.Valid() {
		return ErrRecordNotFound
	}

	blog, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.User.ID != requesterID {
		return ErrNotOwner
	}

	if err := s.m.deleteBlog(ctx, id, requesterID); err != nil {
		return err
	}

	s.c.Delete(common.CacheKeyBlog(id))
	s.c.Delete(common.CacheKeyBlogs())

	return nil
}

// GetBlogsByUserID returns all blogs owned by one user.
func (s *BlogService) GetBlogsByUserID(ctx context.Context, userID int) ([]Blog, error) {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogsByUserID(ctx, userID)
}
