package store

import (
	"fmt"
	"testing"

	"github.com/zeromock/threads-api/internal/models"
)

// tenPosts returns posts with ids 100001..100010 in ascending insertion
// order.
func tenPosts() []models.Post {
	posts := make([]models.Post, 10)
	for i := range posts {
		posts[i] = models.Post{ID: fmt.Sprintf("%d", 100001+i), UserID: "u1"}
	}
	return posts
}

func TestSortPostsByIDDesc(t *testing.T) {
	posts := tenPosts()
	SortPostsByIDDesc(posts)

	if posts[0].ID != "100010" || posts[9].ID != "100001" {
		t.Errorf("Expected descending order 100010..100001, got %s..%s", posts[0].ID, posts[9].ID)
	}
}

func TestSortPostsByIDDescNumericNotLexicographic(t *testing.T) {
	posts := []models.Post{{ID: "99"}, {ID: "100001"}, {ID: "1734567890123"}}
	SortPostsByIDDesc(posts)

	want := []string{"1734567890123", "100001", "99"}
	for i, id := range want {
		if posts[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, posts[i].ID)
		}
	}
}

func TestPagePostsCursorStartsAfterItem(t *testing.T) {
	posts := tenPosts()
	SortPostsByIDDesc(posts)

	// The page after cursor 100008 holds 100007 down to 100001.
	page := PagePosts(posts, "100008", 10)
	if len(page) != 7 {
		t.Fatalf("Expected 7 posts after cursor 100008, got %d", len(page))
	}
	if page[0].ID != "100007" {
		t.Errorf("Expected first post 100007, got %s", page[0].ID)
	}
	if page[len(page)-1].ID != "100001" {
		t.Errorf("Expected last post 100001, got %s", page[len(page)-1].ID)
	}
}

func TestPagePostsUnknownCursorStartsAtBeginning(t *testing.T) {
	posts := tenPosts()
	SortPostsByIDDesc(posts)

	for _, cursor := range []string{"", "999999"} {
		page := PagePosts(posts, cursor, 10)
		if len(page) != 10 {
			t.Fatalf("Cursor %q: expected 10 posts, got %d", cursor, len(page))
		}
		if page[0].ID != "100010" {
			t.Errorf("Cursor %q: expected first post 100010, got %s", cursor, page[0].ID)
		}
	}
}

func TestPagePostsLimit(t *testing.T) {
	posts := make([]models.Post, 25)
	for i := range posts {
		posts[i] = models.Post{ID: fmt.Sprintf("%d", 100001+i)}
	}
	SortPostsByIDDesc(posts)

	page := PagePosts(posts, "", 10)
	if len(page) != 10 {
		t.Errorf("Expected page length 10, got %d", len(page))
	}
}

func TestPagePostsCursorAtLastItem(t *testing.T) {
	posts := tenPosts()
	SortPostsByIDDesc(posts)

	page := PagePosts(posts, "100001", 10)
	if len(page) != 0 {
		t.Errorf("Expected empty page after the last item, got %d posts", len(page))
	}
}

func TestPageActivities(t *testing.T) {
	activities := []models.Activity{
		{ID: "a1", Type: models.ActivityLike},
		{ID: "a2", Type: models.ActivityReply},
		{ID: "a3", Type: models.ActivityFollow},
	}

	page := PageActivities(activities, "a1", 10)
	if len(page) != 2 {
		t.Fatalf("Expected 2 activities after cursor a1, got %d", len(page))
	}
	if page[0].ID != "a2" {
		t.Errorf("Expected first activity a2, got %s", page[0].ID)
	}
}
