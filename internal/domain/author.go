package domain

// RoleAuthor is the role carried by author tokens. Publishing endpoints
// require it.
const RoleAuthor = "author"

type AuthorLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PublishRequest is the author-webhook payload. Document, when present, is
// the full page document JSON to write to the document store before the
// cached copy is invalidated.
type PublishRequest struct {
	Slug     string `json:"slug" validate:"required"`
	Document *Page  `json:"document,omitempty"`
}
