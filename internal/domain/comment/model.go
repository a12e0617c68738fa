package comment

import "encoding/json"

// ID is a comment identity. Comment documents are plain JSON files, so
// a hand-edited or corrupted record may carry a non-numeric id; such
// values decode to 0, which makes the next assigned identity restart
// at 1. That mirrors the store's historical behavior and is kept for
// compatibility with existing documents.
type ID int64

func (n *ID) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	*n = ID(v)
	return nil
}

// Comment is one entry of a project's comment board. CreatedAt is
// stamped by the caller, not the store; the persisted field names
// match the existing document layout.
type Comment struct {
	ID        ID     `json:"id"`
	ProjectID int64  `json:"projectId"`
	Text      string `json:"text"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"timeISO"`
}
