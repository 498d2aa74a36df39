package store

import "time"

// Kind identifies an entity kind. Identifier sequences, primary maps, and
// metrics are all partitioned by kind.
type Kind int

const (
	KindAccount Kind = iota
	KindPost
	KindComment

	numKinds = 3
)

func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "account"
	case KindPost:
		return "post"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Account is a registered author. Handle and Email are unique across all
// live accounts for the lifetime of the store.
type Account struct {
	ID        uint64
	Handle    string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Post is an article owned by an account. AccountID always resolves to a
// live account; the cascade engine removes the post before its owner.
type Post struct {
	ID        uint64
	AccountID uint64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is a reply on a post. Both AccountID (author) and PostID (target)
// always resolve to live records.
type Comment struct {
	ID        uint64
	AccountID uint64
	PostID    uint64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountFields are the caller-supplied fields for CreateAccount.
// Name defaults to Handle when empty.
type AccountFields struct {
	Handle string
	Email  string
	Name   string
}

// PostFields are the caller-supplied fields for CreatePost.
type PostFields struct {
	AccountID uint64
	Title     string
	Body      string
}

// CommentFields are the caller-supplied fields for CreateComment.
type CommentFields struct {
	AccountID uint64
	PostID    uint64
	Body      string
}

// PostUpdate carries the mutable post fields. Empty fields are left
// unchanged. The owner, identifier, and creation timestamp never change
// through the update path.
type PostUpdate struct {
	Title string
	Body  string
}

// CommentUpdate carries the mutable comment fields. Empty fields are left
// unchanged.
type CommentUpdate struct {
	Body string
}
