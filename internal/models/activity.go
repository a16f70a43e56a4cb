package models

// Activity types shown in the activity feed.
const (
	ActivityFollowed = "followed"
	ActivityFollow   = "follow"
	ActivityReply    = "reply"
	ActivityMention  = "mention"
	ActivityQuote    = "quote"
	ActivityRepost   = "repost"
	ActivityLike     = "like"
)

// ActivityTypes lists every supported activity type.
var ActivityTypes = []string{
	ActivityFollowed,
	ActivityFollow,
	ActivityReply,
	ActivityMention,
	ActivityQuote,
	ActivityRepost,
	ActivityLike,
}

// Activity represents a notification concerning a user. Activities are
// created during seeding only and are read-only afterwards.
type Activity struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TimeAgo string `json:"timeAgo"`
	PostID  string `json:"postId,omitempty"`
	UserID  string `json:"-"`
}
