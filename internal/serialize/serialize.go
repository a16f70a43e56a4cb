// Package serialize shapes entities into response payloads. Posts and
// activities always embed the full author record under a "user" key, never a
// bare foreign key, so clients get author details without a second request.
package serialize

import "github.com/zeromock/threads-api/internal/models"

// UserLookup resolves an owner handle to its current user record.
type UserLookup func(id string) (models.User, bool)

// Post is a post payload with its author embedded.
type Post struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	ImageURLs []string    `json:"imageUrls"`
	Location  *[2]float64 `json:"location,omitempty"`
	Likes     int         `json:"likes"`
	Comments  int         `json:"comments"`
	Reposts   int         `json:"reposts"`
	User      models.User `json:"user"`
}

// Activity is an activity payload with its subject embedded.
type Activity struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Content string      `json:"content"`
	TimeAgo string      `json:"timeAgo"`
	PostID  string      `json:"postId,omitempty"`
	User    models.User `json:"user"`
}

// NewPost embeds the author into a post payload.
func NewPost(p models.Post, users UserLookup) Post {
	author, _ := users(p.UserID)
	images := p.ImageURLs
	if images == nil {
		images = []string{}
	}
	return Post{
		ID:        p.ID,
		Content:   p.Content,
		ImageURLs: images,
		Location:  p.Location,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Reposts:   p.Reposts,
		User:      author,
	}
}

// Posts serializes a page of posts, preserving order.
func Posts(ps []models.Post, users UserLookup) []Post {
	out := make([]Post, len(ps))
	for i, p := range ps {
		out[i] = NewPost(p, users)
	}
	return out
}

// NewActivity embeds the subject user into an activity payload.
func NewActivity(a models.Activity, users UserLookup) Activity {
	user, _ := users(a.UserID)
	return Activity{
		ID:      a.ID,
		Type:    a.Type,
		Content: a.Content,
		TimeAgo: a.TimeAgo,
		PostID:  a.PostID,
		User:    user,
	}
}

// Activities serializes a page of activities, preserving order.
func Activities(as []models.Activity, users UserLookup) []Activity {
	out := make([]Activity, len(as))
	for i, a := range as {
		out[i] = NewActivity(a, users)
	}
	return out
}
