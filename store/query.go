package store

import (
	"strings"
	"time"
)

// Op selects how a Condition compares against a field.
type Op int

const (
	// OpEq matches a reference field exactly.
	OpEq Op = iota

	// OpContains matches a free-text field by case-insensitive substring.
	OpContains

	// OpAfter matches records created at or after a point in time.
	OpAfter

	// OpBefore matches records created at or before a point in time.
	OpBefore
)

// Condition is a single query criterion. A record must satisfy every
// supplied condition (logical AND). Conditions naming a field the queried
// kind doesn't have are ignored rather than erroring; querying stays
// permissive on this read path.
type Condition struct {
	Field string
	Op    Op

	Ref  uint64
	Text string
	At   time.Time
}

// Eq matches records whose reference field (e.g. "account_id", "post_id")
// equals ref exactly.
func Eq(field string, ref uint64) Condition {
	return Condition{Field: field, Op: OpEq, Ref: ref}
}

// Contains matches records whose free-text field (e.g. "title", "body",
// "handle", "email", "name") contains text, case-insensitively.
func Contains(field, text string) Condition {
	return Condition{Field: field, Op: OpContains, Text: text}
}

// CreatedAfter matches records created at or after t.
func CreatedAfter(t time.Time) Condition {
	return Condition{Field: "created_at", Op: OpAfter, At: t}
}

// CreatedBefore matches records created at or before t.
func CreatedBefore(t time.Time) Condition {
	return Condition{Field: "created_at", Op: OpBefore, At: t}
}

// QueryAccounts returns copies of the accounts satisfying every condition.
func (s *Store) QueryAccounts(conds ...Condition) []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return evaluate(collect(s.accounts), conds, accountField)
}

// QueryPosts returns copies of the posts satisfying every condition.
func (s *Store) QueryPosts(conds ...Condition) []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return evaluate(collect(s.posts), conds, postField)
}

// QueryComments returns copies of the comments satisfying every condition.
func (s *Store) QueryComments(conds ...Condition) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return evaluate(collect(s.comments), conds, commentField)
}

// fieldValue is a queryable field resolved from a record. Exactly one of
// the three shapes (text, reference, timestamp) is meaningful per field.
type fieldValue struct {
	text   string
	ref    uint64
	at     time.Time
	isRef  bool
	isTime bool
}

func textValue(s string) fieldValue    { return fieldValue{text: s} }
func refValue(id uint64) fieldValue    { return fieldValue{ref: id, isRef: true} }
func timeValue(t time.Time) fieldValue { return fieldValue{at: t, isTime: true} }

func accountField(a Account, name string) (fieldValue, bool) {
	switch name {
	case "handle":
		return textValue(a.Handle), true
	case "email":
		return textValue(a.Email), true
	case "name":
		return textValue(a.Name), true
	case "created_at":
		return timeValue(a.CreatedAt), true
	default:
		return fieldValue{}, false
	}
}

func postField(p Post, name string) (fieldValue, bool) {
	switch name {
	case "account_id":
		return refValue(p.AccountID), true
	case "title":
		return textValue(p.Title), true
	case "body":
		return textValue(p.Body), true
	case "created_at":
		return timeValue(p.CreatedAt), true
	default:
		return fieldValue{}, false
	}
}

func commentField(c Comment, name string) (fieldValue, bool) {
	switch name {
	case "account_id":
		return refValue(c.AccountID), true
	case "post_id":
		return refValue(c.PostID), true
	case "body":
		return textValue(c.Body), true
	case "created_at":
		return timeValue(c.CreatedAt), true
	default:
		return fieldValue{}, false
	}
}

// evaluate filters records down to those satisfying every applicable
// condition. Records are already copies; the result never aliases the
// primary maps.
func evaluate[T any](records []T, conds []Condition, field func(T, string) (fieldValue, bool)) []T {
	if len(conds) == 0 {
		return records
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if satisfiesAll(rec, conds, field) {
			out = append(out, rec)
		}
	}
	return out
}

func satisfiesAll[T any](rec T, conds []Condition, field func(T, string) (fieldValue, bool)) bool {
	for _, cond := range conds {
		fv, known := field(rec, cond.Field)
		if !known {
			continue // unknown field: permissive, not an error
		}
		if !satisfies(fv, cond) {
			return false
		}
	}
	return true
}

func satisfies(fv fieldValue, cond Condition) bool {
	switch cond.Op {
	case OpEq:
		if !fv.isRef {
			return true // op/field shape mismatch: ignored like unknown fields
		}
		return fv.ref == cond.Ref
	case OpContains:
		if fv.isRef || fv.isTime {
			return true
		}
		return strings.Contains(strings.ToLower(fv.text), strings.ToLower(cond.Text))
	case OpAfter:
		if !fv.isTime {
			return true
		}
		return !fv.at.Before(cond.At)
	case OpBefore:
		if !fv.isTime {
			return true
		}
		return !fv.at.After(cond.At)
	default:
		return true
	}
}
