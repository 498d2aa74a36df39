// Package store provides an in-memory data store for accounts, posts, and
// comments with secondary indexes and cascading deletes.
//
// Arbor keeps three primary maps (one per entity kind) as the single source
// of truth and mirrors the relationships between them in secondary indexes
// so that "children of this parent" lookups never scan a whole table.
// Deleting a parent removes every transitively dependent record in the same
// logical operation, leaving no stale index entries behind.
//
// # Key Features
//
//   - Parent validation on child creation (posts require a live account,
//     comments require a live account and post)
//   - Unique constraints on account handle and email
//   - Cascading deletes: account -> posts -> comments, plus comments the
//     account authored on other posts
//   - Copy-on-read: every record handed to a caller is a value copy
//   - Typed query filters (equality, substring, time range)
//   - Relationship views joining posts, comments, and authors
//
// # Concurrency
//
// A single mutex guards each logical operation from start to finish. The
// cascade engine snapshots dependent id sets before mutating, so no caller
// ever observes a half-applied delete.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrMissingField] - a required field is missing or empty on create
//   - [ErrDuplicateValue] - unique constraint violated (handle, email)
//   - [ErrParentNotFound] - a create names a parent that does not exist
//   - [ErrNotFound] - an update or delete targets an absent identifier
//
// Match them with [errors.Is]; create and update errors carry field or id
// context in the wrapped message.
package store
