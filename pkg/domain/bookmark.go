package domain

// BookmarkChange describes a single bookmark mutation to be applied inside a
// host-repository transaction. A nil Node requests deletion of the bookmark.
type BookmarkChange struct {
	// Name is the bookmark name as the host system stores it.
	Name string
	// Node is the revision identifier the bookmark should point at,
	// or nil to delete the bookmark.
	Node []byte
}
