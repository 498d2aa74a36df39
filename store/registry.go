package store

// Relation identifies one parent->child secondary index.
type Relation int

const (
	// RelationAccountPosts maps an account to the posts it owns.
	RelationAccountPosts Relation = iota

	// RelationPostComments maps a post to the comments on it.
	RelationPostComments

	// RelationAccountComments maps an account to the comments it authored.
	RelationAccountComments

	numRelations = 3
)

// Relationship describes a parent-child relation for cascade operations.
type Relationship struct {
	// Name labels the relation in logs.
	Name string

	// ParentKind is the kind whose deletion cascades through this relation.
	ParentKind Kind

	// ChildKind is the kind removed when the parent goes away.
	ChildKind Kind
}

// relationships enumerates the three relations mirrored by the secondary
// indexes. Order matters: the cascade engine walks a parent's relations in
// this order, so an account's posts (and their comments) are removed before
// the account's remaining authored comments.
var relationships = [numRelations]Relationship{
	RelationAccountPosts:    {Name: "account_posts", ParentKind: KindAccount, ChildKind: KindPost},
	RelationPostComments:    {Name: "post_comments", ParentKind: KindPost, ChildKind: KindComment},
	RelationAccountComments: {Name: "account_comments", ParentKind: KindAccount, ChildKind: KindComment},
}

func (r Relation) String() string {
	return relationships[r].Name
}

// childrenOf returns the relations to cascade through when deleting an
// entity of the given kind, in cascade order.
func childrenOf(parent Kind) []Relation {
	var rels []Relation
	for rel, spec := range relationships {
		if spec.ParentKind == parent {
			rels = append(rels, Relation(rel))
		}
	}
	return rels
}
