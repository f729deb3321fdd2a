package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var statsBlogs = []Blog{
	{ID: 1, Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: 4, Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
	{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: 6, Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	testCases := []struct {
		name     string
		blogs    []Blog
		expected int
	}{
		{name: "empty list", blogs: []Blog{}, expected: 0},
		{name: "single blog", blogs: statsBlogs[:1], expected: 7},
		{name: "bigger list", blogs: statsBlogs, expected: 36},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TotalLikes(tc.blogs))
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	testCases := []struct {
		name     string
		blogs    []Blog
		expected *BlogSummary
	}{
		{name: "empty list", blogs: []Blog{}, expected: nil},
		{
			name:     "single blog",
			blogs:    statsBlogs[:1],
			expected: &BlogSummary{Title: "React patterns", Author: "Michael Chan", Likes: 7},
		},
		{
			name:     "bigger list",
			blogs:    statsBlogs,
			expected: &BlogSummary{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
		},
		{
			name: "tie resolves to first maximal entry",
			blogs: []Blog{
				{Title: "a", Author: "x", Likes: 3},
				{Title: "b", Author: "y", Likes: 3},
			},
			expected: &BlogSummary{Title: "a", Author: "x", Likes: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FavoriteBlog(tc.blogs))
		})
	}
}

func TestMostBlogs(t *testing.T) {
	testCases := []struct {
		name     string
		blogs    []Blog
		expected *AuthorBlogs
	}{
		{name: "empty list", blogs: []Blog{}, expected: nil},
		{
			name:     "single blog",
			blogs:    statsBlogs[:1],
			expected: &AuthorBlogs{Author: "Michael Chan", Blogs: 1},
		},
		{
			name:     "bigger list",
			blogs:    statsBlogs,
			expected: &AuthorBlogs{Author: "Robert C. Martin", Blogs: 3},
		},
		{
			name: "tie resolves to first seen author",
			blogs: []Blog{
				{Author: "x"},
				{Author: "y"},
				{Author: "x"},
				{Author: "y"},
			},
			expected: &AuthorBlogs{Author: "x", Blogs: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MostBlogs(tc.blogs))
		})
	}
}

func TestMostLikes(t *testing.T) {
	testCases := []struct {
		name     string
		blogs    []Blog
		expected *AuthorLikes
	}{
		{name: "empty list", blogs: []Blog{}, expected: nil},
		{
			name:     "single blog",
			blogs:    statsBlogs[:1],
			expected: &AuthorLikes{Author: "Michael Chan", Likes: 7},
		},
		{
			name:     "bigger list",
			blogs:    statsBlogs,
			expected: &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17},
		},
		{
			name: "tie resolves to first seen author",
			blogs: []Blog{
				{Author: "x", Likes: 2},
				{Author: "y", Likes: 4},
				{Author: "x", Likes: 2},
			},
			expected: &AuthorLikes{Author: "x", Likes: 4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MostLikes(tc.blogs))
		})
	}
}

// Grouping must not depend on how entries within one author's group are
// arranged, and the functions must not mutate their input.
func TestStatsStableUnderReordering(t *testing.T) {
	original := []Blog{
		{Title: "a1", Author: "x", Likes: 1},
		{Title: "b1", Author: "y", Likes: 2},
		{Title: "a2", Author: "x", Likes: 3},
		{Title: "b2", Author: "y", Likes: 1},
	}
	reordered := []Blog{
		{Title: "a2", Author: "x", Likes: 3},
		{Title: "b2", Author: "y", Likes: 1},
		{Title: "a1", Author: "x", Likes: 1},
		{Title: "b1", Author: "y", Likes: 2},
	}

	assert.Equal(t, MostBlogs(original), MostBlogs(reordered))
	assert.Equal(t, MostLikes(original), MostLikes(reordered))

	snapshot := make([]Blog, len(original))
	copy(snapshot, original)

	TotalLikes(original)
	FavoriteBlog(original)
	MostBlogs(original)
	MostLikes(original)

	assert.Equal(t, snapshot, original)
}

func TestStatsIdempotent(t *testing.T) {
	first := MostLikes(statsBlogs)
	second := MostLikes(statsBlogs)
	assert.Equal(t, first, second)
}
