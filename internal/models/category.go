package models

// Category groups foods on the dashboard
type Category struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

func (c Category) Validate() error {
	if c.ID <= 0 {
		return invalid("category", "id", "must be positive")
	}
	if c.Title == "" {
		return invalid("category", "title", "is required")
	}
	return nil
}
