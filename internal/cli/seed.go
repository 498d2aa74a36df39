package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jacentio/arbor/store"
)

// Seed is a YAML fixture applied to a store before the demo walkthrough.
// Posts reference their owning account by handle; comments reference the
// author by handle and the target post by its 1-based position in the
// posts list.
type Seed struct {
	Accounts []SeedAccount `yaml:"accounts"`
	Posts    []SeedPost    `yaml:"posts"`
	Comments []SeedComment `yaml:"comments"`
}

type SeedAccount struct {
	Handle string `yaml:"handle"`
	Email  string `yaml:"email"`
	Name   string `yaml:"name"`
}

type SeedPost struct {
	Account string `yaml:"account"`
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
}

type SeedComment struct {
	Account string `yaml:"account"`
	Post    int    `yaml:"post"`
	Body    string `yaml:"body"`
}

// LoadSeed reads and parses a seed fixture file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// Apply creates the seed's entities in order: accounts, posts, comments.
func (s *Seed) Apply(st *store.Store) error {
	byHandle := make(map[string]uint64, len(s.Accounts))
	for _, a := range s.Accounts {
		account, err := st.CreateAccount(store.AccountFields{
			Handle: a.Handle,
			Email:  a.Email,
			Name:   a.Name,
		})
		if err != nil {
			return fmt.Errorf("seed account %q: %w", a.Handle, err)
		}
		byHandle[account.Handle] = account.ID
	}

	postIDs := make([]uint64, 0, len(s.Posts))
	for _, p := range s.Posts {
		accountID, ok := byHandle[p.Account]
		if !ok {
			return fmt.Errorf("seed post %q: unknown account handle %q", p.Title, p.Account)
		}
		post, err := st.CreatePost(store.PostFields{
			AccountID: accountID,
			Title:     p.Title,
			Body:      p.Body,
		})
		if err != nil {
			return fmt.Errorf("seed post %q: %w", p.Title, err)
		}
		postIDs = append(postIDs, post.ID)
	}

	for i, c := range s.Comments {
		accountID, ok := byHandle[c.Account]
		if !ok {
			return fmt.Errorf("seed comment %d: unknown account handle %q", i+1, c.Account)
		}
		if c.Post < 1 || c.Post > len(postIDs) {
			return fmt.Errorf("seed comment %d: post %d out of range", i+1, c.Post)
		}
		if _, err := st.CreateComment(store.CommentFields{
			AccountID: accountID,
			PostID:    postIDs[c.Post-1],
			Body:      c.Body,
		}); err != nil {
			return fmt.Errorf("seed comment %d: %w", i+1, err)
		}
	}

	return nil
}
