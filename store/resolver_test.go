package store_test

import "testing"

func TestPostWithComments(t *testing.T) {
	s := newTestStore()
	a1 := mustAccount(t, s, "john_doe")
	a2 := mustAccount(t, s, "jane_smith")
	p := mustPost(t, s, a1.ID, "Hello")
	c1 := mustComment(t, s, a2.ID, p.ID, "first")
	c2 := mustComment(t, s, a1.ID, p.ID, "second")

	view, ok := s.PostWithComments(p.ID)
	if !ok {
		t.Fatal("expected post view")
	}
	if view.Post.ID != p.ID {
		t.Errorf("unexpected post: %+v", view.Post)
	}
	if len(view.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(view.Comments))
	}
	if view.Comments[0].Comment.ID != c1.ID || view.Comments[1].Comment.ID != c2.ID {
		t.Errorf("comments out of id order: %d, %d", view.Comments[0].Comment.ID, view.Comments[1].Comment.ID)
	}
	if view.Comments[0].Author.Handle != "jane_smith" {
		t.Errorf("expected author snapshot jane_smith, got %q", view.Comments[0].Author.Handle)
	}
}

func TestPostWithComments_AuthorSnapshotIsCurrent(t *testing.T) {
	s := newTestStore()
	a := mustAccount(t, s, "john_doe")
	p := mustPost(t, s, a.ID, "Hello")
	mustComment(t, s, a.ID, p.ID, "self-reply")

	view, ok := s.PostWithComments(p.ID)
	if !ok {
		t.Fatal("expected post view")
	}
	if view.Comments[0].Author.ID != a.ID {
		t.Errorf("expected author %d, got %d", a.ID, view.Comments[0].Author.ID)
	}
}

func TestPostWithComments_Absent(t *testing.T) {
	s := newTestStore()

	if _, ok := s.PostWithComments(42); ok {
		t.Error("expected absent result for unknown post")
	}
}

func TestAccountWithRelations(t *testing.T) {
	s := newTestStore()
	a1 := mustAccount(t, s, "john_doe")
	a2 := mustAccount(t, s, "jane_smith")
	p1 := mustPost(t, s, a1.ID, "one")
	p2 := mustPost(t, s, a1.ID, "two")
	p3 := mustPost(t, s, a2.ID, "three")
	mustComment(t, s, a2.ID, p1.ID, "on one")
	mustComment(t, s, a2.ID, p1.ID, "on one again")
	c := mustComment(t, s, a1.ID, p3.ID, "a1 elsewhere")

	view, ok := s.AccountWithRelations(a1.ID)
	if !ok {
		t.Fatal("expected account view")
	}
	if len(view.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(view.Posts))
	}
	if view.Posts[0].Post.ID != p1.ID || view.Posts[0].CommentCount != 2 {
		t.Errorf("unexpected first post summary: %+v", view.Posts[0])
	}
	if view.Posts[1].Post.ID != p2.ID || view.Posts[1].CommentCount != 0 {
		t.Errorf("unexpected second post summary: %+v", view.Posts[1])
	}
	if len(view.Comments) != 1 {
		t.Fatalf("expected 1 authored comment, got %d", len(view.Comments))
	}
	if view.Comments[0].Comment.ID != c.ID || view.Comments[0].Post.ID != p3.ID {
		t.Errorf("unexpected comment annotation: %+v", view.Comments[0])
	}
}

func TestAccountWithRelations_Absent(t *testing.T) {
	s := newTestStore()

	if _, ok := s.AccountWithRelations(42); ok {
		t.Error("expected absent result for unknown account")
	}
}

func TestAccountWithRelations_ViewIsACopy(t *testing.T) {
	s := newTestStore()
	a := mustAccount(t, s, "john_doe")
	mustPost(t, s, a.ID, "one")

	view, _ := s.AccountWithRelations(a.ID)
	view.Posts[0].Post.Title = "mutated"

	again, _ := s.GetPostByID(view.Posts[0].Post.ID)
	if again.Title != "one" {
		t.Error("view mutation leaked into store")
	}
}
