package models

// User represents a registered account. ID is the unique handle; it is
// immutable after creation and is the foreign key posts and activities
// reference as their owner.
type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	ProfileImageURL    string `json:"profileImageUrl"`
	Link               string `json:"link,omitempty"`
	ShowInstagramBadge bool   `json:"showInstagramBadge,omitempty"`
	IsPrivate          bool   `json:"isPrivate,omitempty"`
	IsVerified         bool   `json:"isVerified,omitempty"`
}
