package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/casd/showcase/internal/domain/catalog"
	"github.com/casd/showcase/internal/domain/comment"
)

// Page sizes the site's grids were designed around: a 3-card strip on
// the home page, a 6-card grid on the project list.
const (
	homePageSize = 3
	listPageSize = 6
)

// Server wires HTTP handlers over the catalog and comment services.
type Server struct {
	catalog  *catalog.Service
	comments *comment.Service
	logger   *slog.Logger
}

// NewServer creates the site router.
func NewServer(catalogSvc *catalog.Service, commentSvc *comment.Service, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{catalog: catalogSvc, comments: commentSvc, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))

	r.Get("/health", srv.handleHealth)
	r.Get("/", srv.handleHome)
	r.Get("/projects/v1.0/list", srv.handleProjectList)
	r.Get("/projects/v1.0/{id}", srv.handleProjectDetail)
	r.Get("/courses/", srv.handleCoursesIndex)
	r.Get("/courses/{subject}", srv.handleCourseDetail)
	r.Get("/comments/{projectID}", srv.handleCommentList)
	r.Post("/comments", srv.handleCommentAdd)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// homeResponse is the front page payload: the featured project plus a
// short page of the latest entries.
type homeResponse struct {
	Featured *catalog.Project  `json:"featured,omitempty"`
	Projects []catalog.Project `json:"projects"`
	Q        string            `json:"q"`
	Page     int               `json:"page"`
	Total    int               `json:"total"`
	TotalPg  int               `json:"totalPages"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	page := parsePage(r.URL.Query().Get("page"))

	var featured *catalog.Project
	if f, err := s.catalog.Featured(); err == nil {
		featured = &f
	}

	pg := s.searchPage(q, page, homePageSize)
	writeJSON(w, http.StatusOK, homeResponse{
		Featured: featured,
		Projects: pg.Items,
		Q:        q,
		Page:     pg.Page,
		Total:    pg.Total,
		TotalPg:  pg.TotalPages,
	})
}

type listResponse struct {
	Projects []catalog.Project `json:"projects"`
	Q        string            `json:"q"`
	Page     int               `json:"page"`
	Total    int               `json:"total"`
	TotalPg  int               `json:"totalPages"`
}

func (s *Server) handleProjectList(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	page := parsePage(r.URL.Query().Get("page"))

	pg := s.searchPage(q, page, listPageSize)
	writeJSON(w, http.StatusOK, listResponse{
		Projects: pg.Items,
		Q:        q,
		Page:     pg.Page,
		Total:    pg.Total,
		TotalPg:  pg.TotalPages,
	})
}

// searchPage is the shared list pipeline: search (or everything),
// newest first, then one page of the result.
func (s *Server) searchPage(q string, page, pageSize int) catalog.Page[catalog.Project] {
	base := s.catalog.Search(q)
	ordered := s.catalog.SortByDateDesc(base)
	return catalog.Paginate(ordered, page, pageSize)
}

func (s *Server) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	p, err := s.catalog.ByID(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCoursesIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"subjects": s.catalog.UniqueSubjects(),
	})
}

// courseProject annotates a project with whether the instructor being
// browsed favorited it (any favorite when no instructor is selected).
type courseProject struct {
	catalog.Project
	HasFavorite bool `json:"has_favorite"`
}

type courseResponse struct {
	Subject     string          `json:"subject"`
	Instructor  string          `json:"instructor,omitempty"`
	Instructors []string        `json:"instructors"`
	Projects    []courseProject `json:"projects"`
}

func (s *Server) handleCourseDetail(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")
	if decoded, err := url.PathUnescape(subject); err == nil {
		subject = decoded
	}
	subject = strings.TrimSpace(subject)
	instructor := strings.TrimSpace(r.URL.Query().Get("instructor"))

	items := s.catalog.BySubjectAndInstructor(subject, instructor)
	projects := make([]courseProject, 0, len(items))
	for _, p := range items {
		projects = append(projects, courseProject{
			Project:     p,
			HasFavorite: s.catalog.HasFavoriteForInstructor(p, instructor),
		})
	}

	writeJSON(w, http.StatusOK, courseResponse{
		Subject:     subject,
		Instructor:  instructor,
		Instructors: s.catalog.UniqueInstructorsBySubject(subject),
		Projects:    projects,
	})
}

func (s *Server) handleCommentList(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": s.comments.ListByProject(projectID),
	})
}

type addCommentRequest struct {
	ProjectID int64  `json:"projectId"`
	Text      string `json:"text"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
}

func (s *Server) handleCommentAdd(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	saved, err := s.comments.Add(comment.AddRequest{
		ProjectID: req.ProjectID,
		Text:      req.Text,
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(err, comment.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}
		s.logger.Error("comment write failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save comment")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// parsePage reads a 1-indexed page parameter; anything non-numeric or
// missing means the first page.
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page == 0 {
		return 1
	}
	return page
}
