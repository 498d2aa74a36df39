package store

// CommentWithAuthor is a comment augmented with its author's current
// account snapshot.
type CommentWithAuthor struct {
	Comment Comment
	Author  Account
}

// PostView is a post plus its comments, each with an author snapshot.
type PostView struct {
	Post     Post
	Comments []CommentWithAuthor
}

// PostSummary is a post annotated with its live comment count.
type PostSummary struct {
	Post         Post
	CommentCount int
}

// CommentWithPost is a comment annotated with its parent post snapshot.
type CommentWithPost struct {
	Comment Comment
	Post    Post
}

// AccountView is an account plus its posts and its authored comments.
type AccountView struct {
	Account  Account
	Posts    []PostSummary
	Comments []CommentWithPost
}

// PostWithComments assembles the post together with its comments in id
// order, each augmented with the author's current account snapshot.
// An absent post yields ok=false.
func (s *Store) PostWithComments(postID uint64) (PostView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return PostView{}, false
	}

	view := PostView{Post: post}
	for _, commentID := range s.indexes.snapshot(RelationPostComments, postID) {
		comment := s.comments[commentID]
		view.Comments = append(view.Comments, CommentWithAuthor{
			Comment: comment,
			Author:  s.accounts[comment.AccountID],
		})
	}
	return view, true
}

// AccountWithRelations assembles the account together with its posts (each
// annotated with a live comment count) and its authored comments (each
// annotated with the parent post). An absent account yields ok=false.
func (s *Store) AccountWithRelations(accountID uint64) (AccountView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return AccountView{}, false
	}

	view := AccountView{Account: account}
	for _, postID := range s.indexes.snapshot(RelationAccountPosts, accountID) {
		view.Posts = append(view.Posts, PostSummary{
			Post:         s.posts[postID],
			CommentCount: len(s.indexes.lookup(RelationPostComments, postID)),
		})
	}
	for _, commentID := range s.indexes.snapshot(RelationAccountComments, accountID) {
		comment := s.comments[commentID]
		view.Comments = append(view.Comments, CommentWithPost{
			Comment: comment,
			Post:    s.posts[comment.PostID],
		})
	}
	return view, true
}
