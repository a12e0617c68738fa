package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/casd/showcase/internal/domain/comment"
)

type commentDocument struct {
	Comments []comment.Comment `json:"comments"`
}

// CommentStore is an append-only comment log backed by a single JSON
// document. The whole document is loaded at startup and rewritten on
// every Add. The mutex serializes writers inside this process; a
// second process writing the same file can still lose updates, which
// is a documented limitation of the deployment model.
type CommentStore struct {
	path string
	mu   sync.Mutex
	data commentDocument
}

// NewCommentStore opens the store, creating the backing document (and
// any missing parent directory) with an empty collection when absent.
func NewCommentStore(path string) (*CommentStore, error) {
	s := &CommentStore{path: path, data: commentDocument{Comments: []comment.Comment{}}}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read comments file: %w", err)
	}
	if err := json.Unmarshal(data, &s.data); err != nil {
		return nil, fmt.Errorf("parse comments file: %w", err)
	}
	return s, nil
}

// ListByProject returns the comments of one project, ascending by id.
func (s *CommentStore) ListByProject(projectID int64) []comment.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []comment.Comment{}
	for _, c := range s.data.Comments {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Add assigns the next identity, appends the record and rewrites the
// backing document. The identity is the last stored record's id plus
// one, not the maximum over the collection; a trailing record whose id
// decoded to 0 (corrupted document) restarts the sequence at 1. That
// matches the existing documents on disk and stays.
func (s *CommentStore) Add(c comment.Comment) (comment.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastID comment.ID
	if n := len(s.data.Comments); n > 0 {
		lastID = s.data.Comments[n-1].ID
	}
	c.ID = lastID + 1

	s.data.Comments = append(s.data.Comments, c)
	if err := s.save(); err != nil {
		return comment.Comment{}, err
	}
	return c, nil
}

// save rewrites the whole document, pretty-printed. One write call
// with the full content; no rename-swap atomicity.
func (s *CommentStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write comments file: %w", err)
	}
	return nil
}
