package catalog

// Project is one entry of the showcase snapshot. The snapshot is
// human-maintained JSON, so most fields are optional free text.
type Project struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Subject     string   `json:"subject,omitempty"`
	Instructor  string   `json:"instructor,omitempty"`
	Date        string   `json:"date,omitempty"`
	StartTime   string   `json:"start_time,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	LogoImage   string   `json:"logo_image,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Members     []string `json:"members,omitempty"`
	DeployURL   string   `json:"deploy_url,omitempty"`
	Featured    bool     `json:"featured,omitempty"`

	// Active is the marker older snapshots used before "featured".
	Active bool `json:"active,omitempty"`

	Favorites []Favorite `json:"favorites,omitempty"`
}

// Favorite is an instructor's endorsement of a project.
type Favorite struct {
	Instructor string `json:"instructor"`
	Comment    string `json:"comment,omitempty"`
	Audio      string `json:"audio,omitempty"`
}

// Page is one page of a paginated sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
