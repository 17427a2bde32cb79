package github

// User represents a GitHub user or organization profile.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Type      string `json:"type"` // "User", "Organization" or "Bot"
	AvatarURL string `json:"avatar_url"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// userResponse is one element of a user-list endpoint
// (followers, following, public_members).
type userResponse struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}
