package types

type SelectionType string

const (
	SelectionFolder     SelectionType = "folder"
	SelectionCollection SelectionType = "collection"
)

const (
	CollectionPersonal  = "personal"
	CollectionShared    = "shared"
	CollectionAvailable = "available"
)

// EntrySelection names a logical set of entries: an explicit id list, the
// contents of a folder, or one of the named collections. An explicit id
// list always wins over the folder/collection lookup.
type EntrySelection struct {
	Selection  SelectionType `json:"selection"`
	Entries    []int64       `json:"entries,omitempty"`
	FolderId   int64         `json:"folderId,omitempty"`
	Collection string        `json:"collection,omitempty"`
	EntryType  EntryType     `json:"entryType,omitempty"`
	All        bool          `json:"all"`
}
