package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jacentio/arbor/internal/sequence"
)

// Store is an in-memory blog database with hierarchical entity support.
//
// All operations are safe for use from a single writer; the internal mutex
// is held for a whole logical operation (a create, an update, or a full
// cascade), which is the minimum discipline the snapshot-then-mutate
// cascade requires.
type Store struct {
	mu     sync.Mutex
	config Config

	seq *sequence.Allocator

	// Primary maps: the single source of truth, one per kind.
	accounts map[uint64]Account
	posts    map[uint64]Post
	comments map[uint64]Comment

	// Unique constraint lookups for account creation.
	byHandle map[string]uint64
	byEmail  map[string]uint64

	indexes *indexManager
	metrics *storeMetrics
}

// New creates a new Store instance.
func New(config Config) *Store {
	config.validate()
	return &Store{
		config:   config,
		seq:      sequence.NewAllocator(numKinds),
		accounts: make(map[uint64]Account),
		posts:    make(map[uint64]Post),
		comments: make(map[uint64]Comment),
		byHandle: make(map[string]uint64),
		byEmail:  make(map[string]uint64),
		indexes:  newIndexManager(),
		metrics:  newStoreMetrics(),
	}
}

// CreateAccount validates, allocates an identifier, and inserts a new
// account. Fails with ErrMissingField when handle or email is empty and
// with ErrDuplicateValue when either already belongs to a live account.
func (s *Store) CreateAccount(fields AccountFields) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields.Handle == "" {
		return Account{}, fmt.Errorf("%w: handle", ErrMissingField)
	}
	if fields.Email == "" {
		return Account{}, fmt.Errorf("%w: email", ErrMissingField)
	}
	if _, taken := s.byHandle[fields.Handle]; taken {
		return Account{}, fmt.Errorf("%w: handle %q", ErrDuplicateValue, fields.Handle)
	}
	if _, taken := s.byEmail[fields.Email]; taken {
		return Account{}, fmt.Errorf("%w: email %q", ErrDuplicateValue, fields.Email)
	}

	name := fields.Name
	if name == "" {
		name = fields.Handle
	}

	account := Account{
		ID:        s.seq.Next(int(KindAccount)),
		Handle:    fields.Handle,
		Email:     fields.Email,
		Name:      name,
		CreatedAt: s.config.Now(),
	}

	s.accounts[account.ID] = account
	s.byHandle[account.Handle] = account.ID
	s.byEmail[account.Email] = account.ID
	s.metrics.created[KindAccount].Inc()

	return account, nil
}

// CreatePost validates that the owning account is live, allocates an
// identifier, inserts the post, and registers it in the owner's post set.
func (s *Store) CreatePost(fields PostFields) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields.AccountID == 0 {
		return Post{}, fmt.Errorf("%w: account id", ErrMissingField)
	}
	if fields.Title == "" {
		return Post{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	if fields.Body == "" {
		return Post{}, fmt.Errorf("%w: body", ErrMissingField)
	}
	if _, ok := s.accounts[fields.AccountID]; !ok {
		return Post{}, fmt.Errorf("%w: account %d", ErrParentNotFound, fields.AccountID)
	}

	now := s.config.Now()
	post := Post{
		ID:        s.seq.Next(int(KindPost)),
		AccountID: fields.AccountID,
		Title:     fields.Title,
		Body:      fields.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.posts[post.ID] = post
	s.indexes.register(RelationAccountPosts, post.AccountID, post.ID)
	s.metrics.created[KindPost].Inc()

	return post, nil
}

// CreateComment validates that both the author account and the target post
// are live, inserts the comment, and registers it in the post's comment
// set and the author's comment set.
func (s *Store) CreateComment(fields CommentFields) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields.AccountID == 0 {
		return Comment{}, fmt.Errorf("%w: account id", ErrMissingField)
	}
	if fields.PostID == 0 {
		return Comment{}, fmt.Errorf("%w: post id", ErrMissingField)
	}
	if fields.Body == "" {
		return Comment{}, fmt.Errorf("%w: body", ErrMissingField)
	}
	if _, ok := s.accounts[fields.AccountID]; !ok {
		return Comment{}, fmt.Errorf("%w: account %d", ErrParentNotFound, fields.AccountID)
	}
	if _, ok := s.posts[fields.PostID]; !ok {
		return Comment{}, fmt.Errorf("%w: post %d", ErrParentNotFound, fields.PostID)
	}

	now := s.config.Now()
	comment := Comment{
		ID:        s.seq.Next(int(KindComment)),
		AccountID: fields.AccountID,
		PostID:    fields.PostID,
		Body:      fields.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.comments[comment.ID] = comment
	s.indexes.register(RelationPostComments, comment.PostID, comment.ID)
	s.indexes.register(RelationAccountComments, comment.AccountID, comment.ID)
	s.metrics.created[KindComment].Inc()

	return comment, nil
}

// GetAccountByID returns a copy of the account, or ok=false if absent.
func (s *Store) GetAccountByID(id uint64) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	return account, ok
}

// GetPostByID returns a copy of the post, or ok=false if absent.
func (s *Store) GetPostByID(id uint64) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	return post, ok
}

// GetCommentByID returns a copy of the comment, or ok=false if absent.
func (s *Store) GetCommentByID(id uint64) (Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	return comment, ok
}

// GetAllAccounts returns copies of every live account in insertion order.
func (s *Store) GetAllAccounts() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.accounts)
}

// GetAllPosts returns copies of every live post in insertion order.
func (s *Store) GetAllPosts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.posts)
}

// GetAllComments returns copies of every live comment in insertion order.
func (s *Store) GetAllComments() []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.comments)
}

// GetPostsByAccount returns the account's posts via the secondary index.
// An unknown or childless account yields an empty slice.
func (s *Store) GetPostsByAccount(accountID uint64) []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.indexes.snapshot(RelationAccountPosts, accountID)
	posts := make([]Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, s.posts[id])
	}
	return posts
}

// GetCommentsByPost returns the post's comments via the secondary index.
func (s *Store) GetCommentsByPost(postID uint64) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commentsByIndex(RelationPostComments, postID)
}

// GetCommentsByAccount returns the account's authored comments via the
// secondary index.
func (s *Store) GetCommentsByAccount(accountID uint64) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commentsByIndex(RelationAccountComments, accountID)
}

func (s *Store) commentsByIndex(rel Relation, parentID uint64) []Comment {
	ids := s.indexes.snapshot(rel, parentID)
	comments := make([]Comment, 0, len(ids))
	for _, id := range ids {
		comments = append(comments, s.comments[id])
	}
	return comments
}

// UpdatePost merges the mutable post fields and refreshes the
// last-modified timestamp. Fails with ErrNotFound if the post is absent.
// The identifier, owner, and creation timestamp never change here.
func (s *Store) UpdatePost(id uint64, update PostUpdate) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return Post{}, fmt.Errorf("%w: post %d", ErrNotFound, id)
	}

	if update.Title != "" {
		post.Title = update.Title
	}
	if update.Body != "" {
		post.Body = update.Body
	}
	post.UpdatedAt = s.config.Now()

	s.posts[id] = post
	return post, nil
}

// UpdateComment merges the mutable comment fields and refreshes the
// last-modified timestamp. Fails with ErrNotFound if the comment is absent.
func (s *Store) UpdateComment(id uint64, update CommentUpdate) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return Comment{}, fmt.Errorf("%w: comment %d", ErrNotFound, id)
	}

	if update.Body != "" {
		comment.Body = update.Body
	}
	comment.UpdatedAt = s.config.Now()

	s.comments[id] = comment
	return comment, nil
}

// Stats reports record counts and derived averages.
type Stats struct {
	Accounts int
	Posts    int
	Comments int

	// PostsPerAccount is Posts/Accounts, 0 when there are no accounts.
	PostsPerAccount float64

	// CommentsPerPost is Comments/Posts, 0 when there are no posts.
	CommentsPerPost float64
}

// Stats returns current record counts and derived averages.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Accounts: len(s.accounts),
		Posts:    len(s.posts),
		Comments: len(s.comments),
	}
	if st.Accounts > 0 {
		st.PostsPerAccount = float64(st.Posts) / float64(st.Accounts)
	}
	if st.Posts > 0 {
		st.CommentsPerPost = float64(st.Comments) / float64(st.Posts)
	}
	return st
}

// Clear resets all mappings, unique constraints, secondary indexes, and
// identifier counters to their initial state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.Logger.Info("store cleared",
		"accountsIssued", s.seq.Current(int(KindAccount))-1,
		"postsIssued", s.seq.Current(int(KindPost))-1,
		"commentsIssued", s.seq.Current(int(KindComment))-1,
	)

	s.accounts = make(map[uint64]Account)
	s.posts = make(map[uint64]Post)
	s.comments = make(map[uint64]Comment)
	s.byHandle = make(map[string]uint64)
	s.byEmail = make(map[string]uint64)
	s.indexes.clear()
	s.seq.Reset()
}

// collect copies a primary map's records into a slice ordered by id.
// Identifiers are issued monotonically, so id order is insertion order.
func collect[T any](records map[uint64]T) []T {
	ids := make([]uint64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, records[id])
	}
	return out
}
