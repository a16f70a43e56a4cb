package models

// Post represents a single thread entry. IDs are numeric-looking strings so
// they stay sort-stable as display keys and pagination cursors.
type Post struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	ImageURLs []string    `json:"imageUrls"`
	Location  *[2]float64 `json:"location,omitempty"` // [latitude, longitude]
	Likes     int         `json:"likes"`
	Comments  int         `json:"comments"`
	Reposts   int         `json:"reposts"`
	UserID    string      `json:"-"`
}
