package catalog

import (
	"log/slog"
	"sort"
	"strings"
)

// Service answers read-only queries over a fixed project snapshot.
// The snapshot is loaded once at startup and never reloaded; a running
// process will not observe later edits to the backing file.
type Service struct {
	projects []Project
	logger   *slog.Logger
}

// NewService creates a query service over the given snapshot.
func NewService(projects []Project, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{projects: projects, logger: logger}
}

// All returns a copy of the full snapshot in original order.
func (s *Service) All() []Project {
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ByID returns the first project with the given id.
func (s *Service) ByID(id int64) (Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// Featured returns the first project flagged for the front page.
// Older snapshots use the "active" marker instead of "featured".
func (s *Service) Featured() (Project, error) {
	for _, p := range s.projects {
		if p.Featured || p.Active {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// Latest returns the n most recently dated projects. n <= 0 yields an
// empty slice; n past the snapshot size yields the whole snapshot.
func (s *Service) Latest(n int) []Project {
	if n < 0 {
		n = 0
	}
	sorted := s.SortByDateDesc(s.projects)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Search matches the query against project name, raw date string,
// instructor and member names by case-insensitive substring, and
// against subject by exact (trimmed, case-insensitive) equality —
// subject is a categorical field, the rest are free text. A project
// matches if any field matches. An empty or whitespace-only query
// returns the full snapshot in original order.
func (s *Service) Search(query string) []Project {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return s.All()
	}

	var out []Project
	for _, p := range s.projects {
		if s.matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) matches(p Project, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Date), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Instructor), term) {
		return true
	}
	if strings.TrimSpace(strings.ToLower(p.Subject)) == term {
		return true
	}
	for _, m := range p.Members {
		if strings.Contains(strings.ToLower(m), term) {
			return true
		}
	}
	return false
}

// Paginate slices items into the requested 1-indexed page. The page
// number is clamped into [1, totalPages]; an empty input yields a
// single empty page.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	safePage := page
	if safePage < 1 {
		safePage = 1
	}
	if safePage > totalPages {
		safePage = totalPages
	}

	start := (safePage - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       safePage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// UniqueSubjects returns the sorted distinct non-empty subjects of the
// snapshot.
func (s *Service) UniqueSubjects() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.projects {
		if p.Subject == "" {
			continue
		}
		if _, ok := seen[p.Subject]; ok {
			continue
		}
		seen[p.Subject] = struct{}{}
		out = append(out, p.Subject)
	}
	sort.Strings(out)
	return out
}

// UniqueInstructorsBySubject returns the sorted distinct non-empty
// instructors among projects of the given subject.
func (s *Service) UniqueInstructorsBySubject(subject string) []string {
	m := strings.TrimSpace(subject)
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.projects {
		if strings.TrimSpace(p.Subject) != m || p.Instructor == "" {
			continue
		}
		if _, ok := seen[p.Instructor]; ok {
			continue
		}
		seen[p.Instructor] = struct{}{}
		out = append(out, p.Instructor)
	}
	sort.Strings(out)
	return out
}

// BySubject returns the projects whose trimmed subject equals the
// trimmed argument.
func (s *Service) BySubject(subject string) []Project {
	m := strings.TrimSpace(subject)
	var out []Project
	for _, p := range s.projects {
		if strings.TrimSpace(p.Subject) == m {
			out = append(out, p)
		}
	}
	return out
}

// BySubjectAndInstructor narrows BySubject to one instructor. An empty
// instructor returns every project of the subject.
func (s *Service) BySubjectAndInstructor(subject, instructor string) []Project {
	d := strings.TrimSpace(instructor)
	items := s.BySubject(subject)
	if d == "" {
		return items
	}
	var out []Project
	for _, p := range items {
		if strings.TrimSpace(p.Instructor) == d {
			out = append(out, p)
		}
	}
	return out
}

// HasFavoriteForInstructor reports whether the project carries any
// favorite record, or, when instructor is non-empty, one whose trimmed
// instructor matches exactly.
func (s *Service) HasFavoriteForInstructor(p Project, instructor string) bool {
	if len(p.Favorites) == 0 {
		return false
	}
	d := strings.TrimSpace(instructor)
	if d == "" {
		return true
	}
	for _, f := range p.Favorites {
		if strings.TrimSpace(f.Instructor) == d {
			return true
		}
	}
	return false
}

// FavoritesOf returns the project's favorites, never nil.
func (s *Service) FavoritesOf(p Project) []Favorite {
	if p.Favorites == nil {
		return []Favorite{}
	}
	return p.Favorites
}
