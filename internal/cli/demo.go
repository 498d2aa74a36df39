package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jacentio/arbor/store"
)

// NewDemoCommand creates the demo command: a scripted walkthrough of the
// store's surface, from creation through queries, relationship views,
// updates, and cascading deletes.
func NewDemoCommand(opts *RootOptions) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the blog store walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

			cfg := store.DefaultConfig()
			cfg.Logger = logger
			s := store.New(cfg)

			if seedPath != "" {
				seed, err := LoadSeed(seedPath)
				if err != nil {
					return err
				}
				if err := seed.Apply(s); err != nil {
					return err
				}
			}

			logger.Info("starting demo run", "runID", uuid.NewString())
			return runDemo(s, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML seed fixture applied before the walkthrough")
	return cmd
}

// runDemo drives the walkthrough scenario against the store. Output is
// deterministic: no timestamps, ids in creation order.
func runDemo(s *store.Store, w io.Writer) error {
	fmt.Fprintln(w, "=== arbor blog store demo ===")

	fmt.Fprintln(w, "\n-- accounts --")
	a1, err := s.CreateAccount(store.AccountFields{Handle: "john_doe", Email: "john@example.com", Name: "John Doe"})
	if err != nil {
		return err
	}
	a2, err := s.CreateAccount(store.AccountFields{Handle: "jane_smith", Email: "jane@example.com", Name: "Jane Smith"})
	if err != nil {
		return err
	}
	a3, err := s.CreateAccount(store.AccountFields{Handle: "bob_wilson", Email: "bob@example.com", Name: "Bob Wilson"})
	if err != nil {
		return err
	}
	for _, a := range []store.Account{a1, a2, a3} {
		printAccount(w, a)
	}

	fmt.Fprintln(w, "\n-- posts --")
	p1, err := s.CreatePost(store.PostFields{AccountID: a1.ID, Title: "Introduction to Go", Body: "Go is a statically typed, compiled language..."})
	if err != nil {
		return err
	}
	p2, err := s.CreatePost(store.PostFields{AccountID: a1.ID, Title: "Structuring Go Services", Body: "A tour of package layout conventions..."})
	if err != nil {
		return err
	}
	p3, err := s.CreatePost(store.PostFields{AccountID: a2.ID, Title: "Table-Driven Tests", Body: "One slice of cases, one loop, one assertion..."})
	if err != nil {
		return err
	}
	for _, p := range []store.Post{p1, p2, p3} {
		printPost(w, p)
	}

	fmt.Fprintln(w, "\n-- comments --")
	c1, err := s.CreateComment(store.CommentFields{AccountID: a2.ID, PostID: p1.ID, Body: "Great article! Very informative."})
	if err != nil {
		return err
	}
	c2, err := s.CreateComment(store.CommentFields{AccountID: a3.ID, PostID: p1.ID, Body: "Thanks for sharing this!"})
	if err != nil {
		return err
	}
	c3, err := s.CreateComment(store.CommentFields{AccountID: a3.ID, PostID: p2.ID, Body: "This helped me a lot."})
	if err != nil {
		return err
	}
	c4, err := s.CreateComment(store.CommentFields{AccountID: a1.ID, PostID: p3.ID, Body: "Excellent tips!"})
	if err != nil {
		return err
	}
	for _, c := range []store.Comment{c1, c2, c3, c4} {
		printComment(w, c)
	}

	fmt.Fprintln(w, "\n-- queries --")
	fmt.Fprintf(w, "accounts with handle containing %q: %d\n", "john", len(s.QueryAccounts(store.Contains("handle", "john"))))
	fmt.Fprintf(w, "posts by account #%d: %d\n", a1.ID, len(s.GetPostsByAccount(a1.ID)))
	fmt.Fprintf(w, "posts with title containing %q: %d\n", "go", len(s.QueryPosts(store.Contains("title", "go"))))
	fmt.Fprintf(w, "comments on post #%d: %d\n", p1.ID, len(s.GetCommentsByPost(p1.ID)))
	fmt.Fprintf(w, "comments by account #%d: %d\n", a3.ID, len(s.GetCommentsByAccount(a3.ID)))

	fmt.Fprintln(w, "\n-- relationship views --")
	if view, ok := s.PostWithComments(p1.ID); ok {
		fmt.Fprintf(w, "post #%d %q has %d comments:\n", view.Post.ID, view.Post.Title, len(view.Comments))
		for _, c := range view.Comments {
			fmt.Fprintf(w, "  comment #%d by %s: %q\n", c.Comment.ID, c.Author.Handle, c.Comment.Body)
		}
	}
	if view, ok := s.AccountWithRelations(a1.ID); ok {
		fmt.Fprintf(w, "account #%d (%s): %d posts, %d comments\n", view.Account.ID, view.Account.Handle, len(view.Posts), len(view.Comments))
		for _, p := range view.Posts {
			fmt.Fprintf(w, "  post #%d %q (%d comments)\n", p.Post.ID, p.Post.Title, p.CommentCount)
		}
		for _, c := range view.Comments {
			fmt.Fprintf(w, "  comment #%d on post #%d %q\n", c.Comment.ID, c.Post.ID, c.Post.Title)
		}
	}

	fmt.Fprintln(w, "\n-- updates --")
	updated, err := s.UpdatePost(p2.ID, store.PostUpdate{Title: "Structuring Go Services, Revisited"})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "post #%d title after update: %q\n", updated.ID, updated.Title)

	fmt.Fprintln(w, "\n-- cascading deletes --")
	postResult, err := s.DeletePost(p1.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "deleted post #%d: %d post, %d comments removed\n", p1.ID, postResult.PostsDeleted, postResult.CommentsDeleted)
	accountResult, err := s.DeleteAccount(a2.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "deleted account #%d: %d post, %d comment removed\n", a2.ID, accountResult.PostsDeleted, accountResult.CommentsDeleted)
	_, present := s.GetCommentByID(c1.ID)
	fmt.Fprintf(w, "comment #%d still present: %v\n", c1.ID, present)

	fmt.Fprintln(w, "\n-- stats --")
	printStats(w, s.Stats())

	fmt.Fprintln(w, "\n-- clear --")
	s.Clear()
	st := s.Stats()
	fmt.Fprintf(w, "after clear: accounts=%d posts=%d comments=%d\n", st.Accounts, st.Posts, st.Comments)

	return nil
}

func printAccount(w io.Writer, a store.Account) {
	fmt.Fprintf(w, "account #%d handle=%s email=%s name=%q\n", a.ID, a.Handle, a.Email, a.Name)
}

func printPost(w io.Writer, p store.Post) {
	fmt.Fprintf(w, "post #%d account=%d title=%q\n", p.ID, p.AccountID, p.Title)
}

func printComment(w io.Writer, c store.Comment) {
	fmt.Fprintf(w, "comment #%d account=%d post=%d body=%q\n", c.ID, c.AccountID, c.PostID, c.Body)
}

func printStats(w io.Writer, st store.Stats) {
	fmt.Fprintf(w, "accounts=%d posts=%d comments=%d posts/account=%.2f comments/post=%.2f\n",
		st.Accounts, st.Posts, st.Comments, st.PostsPerAccount, st.CommentsPerPost)
}
