package domain

// ProfileUpdate carries the editable profile fields; empty fields are not sent.
type ProfileUpdate struct {
	PhoneNumber string
	FirstName   string
	Email       string
	Username    string
	Biography   string
	ExternalURL string
}

// UserInfo is the subset of the basic-info user object the client derives values from.
type UserInfo struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsPrivate      bool  `json:"is_private"`
	IsVerified     bool  `json:"is_verified"`
}
