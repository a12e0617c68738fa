package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/casd/showcase/internal/domain/catalog"
)

// ProjectRepository reads the project snapshot from a JSON document.
// The snapshot is read-only; writes go through whatever maintains the
// file out of band.
type ProjectRepository struct {
	path string
}

// NewProjectRepository creates a snapshot reader for the given file.
func NewProjectRepository(path string) *ProjectRepository {
	return &ProjectRepository{path: path}
}

// LoadAll reads and decodes the full snapshot.
func (r *ProjectRepository) LoadAll() ([]catalog.Project, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read projects file: %w", err)
	}
	var projects []catalog.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse projects file: %w", err)
	}
	return projects, nil
}
