package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/casd/showcase/internal/domain/catalog"
	"github.com/casd/showcase/internal/domain/comment"
	"github.com/casd/showcase/internal/jsonstore"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	projects := []catalog.Project{
		{ID: 1, Name: "Histofy", Subject: "CAPSTONE PROJECT II", Instructor: "LENIN SERRANO",
			Date: "10/28/2025", Members: []string{"Malory Basanta"}, Featured: true,
			Favorites: []catalog.Favorite{{Instructor: "LENIN SERRANO"}}},
		{ID: 2, Name: "Vizla", Subject: "CAPSTONE PROJECT II", Instructor: "DANIT CASTELLANOS",
			Date: "10/29/2025"},
		{ID: 3, Name: "Bifrost", Subject: "CAPSTONE PROJECT I", Instructor: "SANDRA REYES",
			Date: "10/29/2025"},
		{ID: 4, Name: "Software Development Center", Subject: "CAPSTONE PROJECT I",
			Instructor: "OMAR RODRIGUEZ", Date: "10/30/2025"},
	}

	store, err := jsonstore.NewCommentStore(filepath.Join(t.TempDir(), "comments.json"))
	require.NoError(t, err)

	router := NewServer(
		catalog.NewService(projects, nil),
		comment.NewService(store, nil),
		nil,
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, dst any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp
}

func TestServer_Health(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Home(t *testing.T) {
	server := newTestServer(t)

	var body struct {
		Featured *catalog.Project  `json:"featured"`
		Projects []catalog.Project `json:"projects"`
		Page     int               `json:"page"`
		Total    int               `json:"total"`
		TotalPg  int               `json:"totalPages"`
	}
	resp := getJSON(t, server.URL+"/", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, body.Featured)
	require.EqualValues(t, 1, body.Featured.ID)
	require.Len(t, body.Projects, 3)
	require.Equal(t, "Software Development Center", body.Projects[0].Name)
	require.Equal(t, 1, body.Page)
	require.Equal(t, 4, body.Total)
	require.Equal(t, 2, body.TotalPg)
}

func TestServer_ProjectList(t *testing.T) {
	server := newTestServer(t)

	t.Run("search narrows results", func(t *testing.T) {
		var body struct {
			Projects []catalog.Project `json:"projects"`
			Q        string            `json:"q"`
			Total    int               `json:"total"`
		}
		getJSON(t, server.URL+"/projects/v1.0/list?q=vizla", &body)
		require.Equal(t, "vizla", body.Q)
		require.Equal(t, 1, body.Total)
		require.Equal(t, "Vizla", body.Projects[0].Name)
	})

	t.Run("out of range page clamps", func(t *testing.T) {
		var body struct {
			Page    int `json:"page"`
			TotalPg int `json:"totalPages"`
		}
		getJSON(t, server.URL+"/projects/v1.0/list?page=999", &body)
		require.Equal(t, 1, body.TotalPg)
		require.Equal(t, 1, body.Page)
	})

	t.Run("non-numeric page defaults to 1", func(t *testing.T) {
		var body struct {
			Page int `json:"page"`
		}
		getJSON(t, server.URL+"/projects/v1.0/list?page=abc", &body)
		require.Equal(t, 1, body.Page)
	})
}

func TestServer_ProjectDetail(t *testing.T) {
	server := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		var p catalog.Project
		resp := getJSON(t, server.URL+"/projects/v1.0/2", &p)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Vizla", p.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/projects/v1.0/999", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/projects/v1.0/abc", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Courses(t *testing.T) {
	server := newTestServer(t)

	t.Run("index lists subjects", func(t *testing.T) {
		var body struct {
			Subjects []string `json:"subjects"`
		}
		getJSON(t, server.URL+"/courses/", &body)
		require.Equal(t, []string{"CAPSTONE PROJECT I", "CAPSTONE PROJECT II"}, body.Subjects)
	})

	t.Run("detail with url-encoded subject", func(t *testing.T) {
		var body struct {
			Subject     string   `json:"subject"`
			Instructors []string `json:"instructors"`
			Projects    []struct {
				Name        string `json:"name"`
				HasFavorite bool   `json:"has_favorite"`
			} `json:"projects"`
		}
		getJSON(t, server.URL+"/courses/CAPSTONE%20PROJECT%20II", &body)
		require.Equal(t, "CAPSTONE PROJECT II", body.Subject)
		require.Equal(t, []string{"DANIT CASTELLANOS", "LENIN SERRANO"}, body.Instructors)
		require.Len(t, body.Projects, 2)
	})

	t.Run("instructor filter annotates favorites", func(t *testing.T) {
		var body struct {
			Projects []struct {
				Name        string `json:"name"`
				HasFavorite bool   `json:"has_favorite"`
			} `json:"projects"`
		}
		getJSON(t, server.URL+"/courses/CAPSTONE%20PROJECT%20II?instructor=LENIN%20SERRANO", &body)
		require.Len(t, body.Projects, 1)
		require.Equal(t, "Histofy", body.Projects[0].Name)
		require.True(t, body.Projects[0].HasFavorite)
	})
}

func TestServer_Comments(t *testing.T) {
	server := newTestServer(t)

	t.Run("non-numeric project id rejected", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/comments/abc", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/comments", "application/json",
			bytes.NewBufferString(`{"projectId": 1, "text": "hi"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("add then list", func(t *testing.T) {
		payload := `{"projectId": 2, "text": "great work", "name": "ana", "icon": "cat"}`
		resp, err := http.Post(server.URL+"/comments", "application/json",
			bytes.NewBufferString(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var saved comment.Comment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
		resp.Body.Close()
		require.EqualValues(t, 1, saved.ID)
		require.NotEmpty(t, saved.CreatedAt)

		var body struct {
			Items []comment.Comment `json:"items"`
		}
		getJSON(t, server.URL+"/comments/2", &body)
		require.Len(t, body.Items, 1)
		require.Equal(t, "great work", body.Items[0].Text)

		var empty struct {
			Items []comment.Comment `json:"items"`
		}
		getJSON(t, server.URL+"/comments/1", &empty)
		require.Empty(t, empty.Items)
	})
}
