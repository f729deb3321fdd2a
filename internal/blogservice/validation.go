package blogservice

import (
	"github.com/sushihentaime/bloglist/internal/common"
)

// validateBlog enforces the persistence invariant: a blog carries a title or
// a url, and likes never go negative. The "title or url missing" message is
// part of the wire contract.
func validateBlog(v *common.Validator, title, url string, likes int) {
	v.Check(title != "" || url != "", "blog", "title or url missing")
	v.Check(likes >= 0, "likes", "likes must not be negative")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
