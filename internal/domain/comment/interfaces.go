package comment

// Repository provides persistence for comments.
type Repository interface {
	ListByProject(projectID int64) []Comment
	Add(c Comment) (Comment, error)
}
