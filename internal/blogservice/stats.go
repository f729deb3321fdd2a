package blogservice

// Read-side aggregations over a list of blogs. All functions are pure: they
// never mutate their input and repeated calls with the same input produce
// the same output. Ties resolve to the first maximal entry in input order;
// grouping by author preserves first-seen order, so the result does not
// depend on how entries within one author's group are arranged.

type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes of all blogs. An empty list sums to zero.
func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// list.
func FavoriteBlog(blogs []Blog) *BlogSummary {
	var favorite *BlogSummary
	for _, b := range blogs {
		if favorite == nil || b.Likes > favorite.Likes {
			favorite = &BlogSummary{
				Title:  b.Title,
				Author: b.Author,
				Likes:  b.Likes,
			}
		}
	}
	return favorite
}

// MostBlogs returns the author with the most blogs, or nil for an empty
// list.
func MostBlogs(blogs []Blog) *AuthorBlogs {
	groups := []AuthorBlogs{}
	index := make(map[string]int)

	for _, b := range blogs {
		i, ok := index[b.Author]
		if !ok {
			index[b.Author] = len(groups)
			groups = append(groups, AuthorBlogs{Author: b.Author})
			i = index[b.Author]
		}
		groups[i].Blogs++
	}

	var most *AuthorBlogs
	for i := range groups {
		if most == nil || groups[i].Blogs > most.Blogs {
			most = &groups[i]
		}
	}
	return most
}

// MostLikes returns the author whose blogs collected the most likes in
// total, or nil for an empty list.
func MostLikes(blogs []Blog) *AuthorLikes {
	groups := []AuthorLikes{}
	index := make(map[string]int)

	for _, b := range blogs {
		i, ok := index[b.Author]
		if !ok {
			index[b.Author] = len(groups)
			groups = append(groups, AuthorLikes{Author: b.Author})
			i = index[b.Author]
		}
		groups[i].Likes += b.Likes
	}

	var most *AuthorLikes
	for i := range groups {
		if most == nil || groups[i].Likes > most.Likes {
			most = &groups[i]
		}
	}
	return most
}
