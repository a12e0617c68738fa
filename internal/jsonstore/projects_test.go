package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectRepository_LoadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	doc := `[
  {"id": 1, "name": "Histofy", "subject": "CAPSTONE PROJECT II", "date": "10/28/2025",
   "members": ["Malory Basanta"], "featured": true,
   "favorites": [{"instructor": "LENIN SERRANO", "comment": "Great demo."}]},
  {"id": 2, "name": "Vizla"}
]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	projects, err := NewProjectRepository(path).LoadAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "Histofy", projects[0].Name)
	require.True(t, projects[0].Featured)
	require.Len(t, projects[0].Favorites, 1)
	require.Empty(t, projects[1].Members)
	require.Empty(t, projects[1].Favorites)
}

func TestProjectRepository_LoadAllMissingFile(t *testing.T) {
	_, err := NewProjectRepository(filepath.Join(t.TempDir(), "absent.json")).LoadAll()
	require.Error(t, err)
}

func TestProjectRepository_LoadAllMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewProjectRepository(path).LoadAll()
	require.Error(t, err)
}
