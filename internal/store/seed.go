package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zeromock/threads-api/internal/fake"
	"github.com/zeromock/threads-api/internal/models"
)

// The well-known fixture account. Login resolves to this user and every
// created post is attributed to it.
const (
	FixtureUserID          = "zerohch0"
	FixtureUserName        = "ZeroCho"
	FixtureUserDescription = "🐢 lover, programmer, youtuber"
	FixtureUserAvatar      = "https://avatars.githubusercontent.com/u/885857?v=4"
)

// SeedSpec controls how much fixture data Seed generates.
type SeedSpec struct {
	Users        int // randomly generated users
	PostsPerUser int // posts owned by each generated user
	ExtraPosts   int // additional posts owned by the fixture user
}

// Seed populates the store with the well-known fixture user, a batch of
// generated users each owning a handful of posts, extra posts for the fixture
// user, and one seeded activity per activity type. Runs once at process
// start.
func Seed(s *Store, f *fake.Faker, spec SeedSpec) error {
	fixture := models.User{
		ID:              FixtureUserID,
		Name:            FixtureUserName,
		Description:     FixtureUserDescription,
		ProfileImageURL: FixtureUserAvatar,
	}
	if err := s.CreateUser(fixture); err != nil {
		return fmt.Errorf("failed to seed fixture user: %w", err)
	}

	for i := 0; i < spec.Users; i++ {
		u := models.User{
			ID:              uniqueHandle(s, f),
			Name:            f.FullName(),
			Description:     f.Sentence(),
			ProfileImageURL: f.AvatarURL(),
			IsVerified:      f.Bool(),
		}
		if err := s.CreateUser(u); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		for j := 0; j < spec.PostsPerUser; j++ {
			if _, err := seedPost(s, f, u.ID); err != nil {
				return fmt.Errorf("failed to seed post: %w", err)
			}
		}
	}

	var lastID string
	for i := 0; i < spec.ExtraPosts; i++ {
		p, err := seedPost(s, f, FixtureUserID)
		if err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
		lastID = p.ID
	}

	for _, typ := range models.ActivityTypes {
		a := models.Activity{
			ID:      uuid.NewString(),
			Type:    typ,
			Content: f.Sentence(),
			TimeAgo: f.TimeAgo(),
			UserID:  FixtureUserID,
		}
		// Follow notifications point at profiles, the rest at a post.
		if typ != models.ActivityFollow && typ != models.ActivityFollowed {
			a.PostID = lastID
		}
		if _, err := s.CreateActivity(a); err != nil {
			return fmt.Errorf("failed to seed activity: %w", err)
		}
	}

	return nil
}

// seedPost creates a random post, regenerating the id on the rare collision.
func seedPost(s *Store, f *fake.Faker, userID string) (models.Post, error) {
	p := randomPost(f, userID)
	for {
		if _, taken := s.FindPost(p.ID); !taken {
			break
		}
		p.ID = f.NumericID(6)
	}
	return s.CreatePost(p)
}

func randomPost(f *fake.Faker, userID string) models.Post {
	images := make([]string, f.IntN(3))
	for i := range images {
		images[i] = f.ImageURL()
	}
	return models.Post{
		ID:        f.NumericID(6),
		Content:   f.Paragraph(),
		ImageURLs: images,
		Likes:     f.IntN(100),
		Comments:  f.IntN(100),
		Reposts:   f.IntN(100),
		UserID:    userID,
	}
}

// uniqueHandle lowers a generated first name into a handle, suffixing digits
// until it is unused.
func uniqueHandle(s *Store, f *fake.Faker) string {
	handle := strings.ToLower(f.FirstName())
	for {
		if _, taken := s.FindUser(handle); !taken {
			return handle
		}
		handle = fmt.Sprintf("%s%d", handle, f.IntN(10))
	}
}
