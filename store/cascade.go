package store

import "fmt"

// DeleteResult summarizes what a cascading delete removed, the root
// entity included.
type DeleteResult struct {
	PostsDeleted    int
	CommentsDeleted int
}

// DeleteComment removes a single comment and unregisters it from its
// post's and author's comment sets. Terminal: nothing cascades further.
func (s *Store) DeleteComment(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return fmt.Errorf("%w: comment %d", ErrNotFound, id)
	}
	s.deleteCommentLocked(id)
	return nil
}

// DeletePost removes a post together with every comment on it. The
// comment-id set is snapshotted before any mutation, so the walk is
// deterministic and total.
func (s *Store) DeletePost(id uint64) (DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return DeleteResult{}, fmt.Errorf("%w: post %d", ErrNotFound, id)
	}

	comments := s.deletePostLocked(id)
	s.metrics.cascades.Inc()

	result := DeleteResult{PostsDeleted: 1, CommentsDeleted: comments}
	s.config.Logger.Info("cascade delete completed",
		"kind", KindPost.String(),
		"id", id,
		"commentsDeleted", result.CommentsDeleted,
	)
	return result, nil
}

// DeleteAccount removes an account, every post it owns (cascading to the
// comments on those posts, whoever authored them), and finally the
// comments the account authored on other posts.
func (s *Store) DeleteAccount(id uint64) (DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return DeleteResult{}, fmt.Errorf("%w: account %d", ErrNotFound, id)
	}

	var result DeleteResult

	// Walk the account's relations in cascade order: owned posts first
	// (removing their comments transitively), then whatever authored
	// comments remain. Each relation's id set is snapshotted only when
	// the walk reaches it, so the second snapshot already excludes
	// comments removed by the post cascade.
	for _, rel := range childrenOf(KindAccount) {
		for _, childID := range s.indexes.snapshot(rel, id) {
			switch relationships[rel].ChildKind {
			case KindPost:
				result.CommentsDeleted += s.deletePostLocked(childID)
				result.PostsDeleted++
			case KindComment:
				if s.deleteCommentLocked(childID) {
					result.CommentsDeleted++
				}
			}
		}
		s.indexes.drop(rel, id)
	}

	delete(s.byHandle, account.Handle)
	delete(s.byEmail, account.Email)
	delete(s.accounts, id)
	s.metrics.deleted[KindAccount].Inc()
	s.metrics.cascades.Inc()

	s.config.Logger.Info("cascade delete completed",
		"kind", KindAccount.String(),
		"id", id,
		"postsDeleted", result.PostsDeleted,
		"commentsDeleted", result.CommentsDeleted,
	)
	return result, nil
}

// deletePostLocked removes a post and the snapshotted set of comments on
// it, returning how many comments went away. Callers hold the mutex and
// have verified the post exists; a vanished post reads as zero work.
func (s *Store) deletePostLocked(id uint64) int {
	post, ok := s.posts[id]
	if !ok {
		return 0
	}

	deleted := 0
	for _, commentID := range s.indexes.snapshot(RelationPostComments, id) {
		if s.deleteCommentLocked(commentID) {
			deleted++
		}
	}

	s.indexes.unregister(RelationAccountPosts, post.AccountID, id)
	s.indexes.drop(RelationPostComments, id)
	delete(s.posts, id)
	s.metrics.deleted[KindPost].Inc()

	return deleted
}

// deleteCommentLocked removes a comment and unregisters it from both
// comment indexes. An id that already vanished reads as already-deleted
// and reports false.
func (s *Store) deleteCommentLocked(id uint64) bool {
	comment, ok := s.comments[id]
	if !ok {
		return false
	}

	s.indexes.unregister(RelationPostComments, comment.PostID, id)
	s.indexes.unregister(RelationAccountComments, comment.AccountID, id)
	delete(s.comments, id)
	s.metrics.deleted[KindComment].Inc()

	return true
}
