package comment

import (
	"fmt"
	"log/slog"
	"strings"
)

// Service handles comment-board operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new comment service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// AddRequest defines comment creation inputs. CreatedAt is supplied by
// the caller (the adapter stamps it at request time).
type AddRequest struct {
	ProjectID int64
	Text      string
	Name      string
	Icon      string
	CreatedAt string
}

// ListByProject returns a project's comments, oldest first. The
// project id is not checked against the catalog; an unknown id simply
// has no comments.
func (s *Service) ListByProject(projectID int64) []Comment {
	return s.repo.ListByProject(projectID)
}

// Add appends one comment and returns the stored record including its
// assigned identity.
func (s *Service) Add(req AddRequest) (Comment, error) {
	if req.ProjectID == 0 || strings.TrimSpace(req.Text) == "" ||
		strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Icon) == "" {
		return Comment{}, ErrInvalidInput
	}

	saved, err := s.repo.Add(Comment{
		ProjectID: req.ProjectID,
		Text:      req.Text,
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return Comment{}, fmt.Errorf("adding comment: %w", err)
	}

	s.logger.Debug("comment added", "project_id", req.ProjectID, "comment_id", int64(saved.ID))
	return saved, nil
}
