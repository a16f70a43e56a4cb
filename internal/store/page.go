package store

import (
	"sort"
	"strconv"

	"github.com/zeromock/threads-api/internal/models"
)

// SortPostsByIDDesc orders posts newest-first by the numeric value of their
// id. Ids that do not parse as integers sort after the numeric ones, by
// string value descending.
func SortPostsByIDDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, aerr := strconv.ParseInt(posts[i].ID, 10, 64)
		b, berr := strconv.ParseInt(posts[j].ID, 10, 64)
		switch {
		case aerr == nil && berr == nil:
			return a > b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return posts[i].ID > posts[j].ID
		}
	})
}

// PagePosts returns up to limit posts starting immediately after the post
// whose id equals cursor. An absent or unknown cursor starts the page at the
// beginning of the list.
func PagePosts(posts []models.Post, cursor string, limit int) []models.Post {
	return pageAfter(posts, func(p models.Post) string { return p.ID }, cursor, limit)
}

// PageActivities is the activity counterpart of PagePosts.
func PageActivities(activities []models.Activity, cursor string, limit int) []models.Activity {
	return pageAfter(activities, func(a models.Activity) string { return a.ID }, cursor, limit)
}

// pageAfter locates the cursor item's position in the candidate list and
// slices the page that starts strictly after it. A missing cursor resolves to
// position -1, yielding the first page.
func pageAfter[T any](items []T, id func(T) string, cursor string, limit int) []T {
	target := -1
	if cursor != "" {
		for i, item := range items {
			if id(item) == cursor {
				target = i
				break
			}
		}
	}

	start := target + 1
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	page := make([]T, end-start)
	copy(page, items[start:end])
	return page
}
