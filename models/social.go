package models

// Friend is one entry of the user's social graph, flattened from the
// server-side friendship record.
type Friend struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	FriendshipID   int64   `json:"friendship_id"`
	Status         string  `json:"status"`
	IsRequester    bool    `json:"is_requester"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// FriendsResponse is returned by GET /api/social/friends.
type FriendsResponse struct {
	APIResponse
	Friends []Friend `json:"friends"`
}

// PostAuthor is the reduced user record embedded in feed entries.
type PostAuthor struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// Post is one feed entry.
type Post struct {
	ID            int64      `json:"id"`
	Content       string     `json:"content"`
	ImageURL      *string    `json:"image_url,omitempty"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
	CreatedAt     string     `json:"created_at"`
	User          PostAuthor `json:"user"`
	Liked         bool       `json:"liked"`
}

// FeedResponse is returned by GET /api/social/posts.
type FeedResponse struct {
	APIResponse
	Posts   []Post `json:"posts"`
	HasMore bool   `json:"has_more"`
}

// PostResponse is returned by POST /api/social/posts.
type PostResponse struct {
	APIResponse
	Post *Post `json:"post,omitempty"`
}

// LikeResponse is returned by the post like toggle.
type LikeResponse struct {
	APIResponse
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// Comment is one comment on a post.
type Comment struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"created_at"`
	User      PostAuthor `json:"user"`
}

// CommentsResponse is returned by GET /api/social/posts/{id}/comments.
type CommentsResponse struct {
	APIResponse
	Comments []Comment `json:"comments"`
}

// CommentResponse is returned when a comment is created.
type CommentResponse struct {
	APIResponse
	Comment *Comment `json:"comment,omitempty"`
}

// FriendshipStatus is attached to user search hits when a friendship with
// the searching user already exists.
type FriendshipStatus struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	IsRequester bool   `json:"is_requester"`
}

// UserSearchHit is one result of the user search.
type UserSearchHit struct {
	ID             int64             `json:"id"`
	Username       string            `json:"username"`
	Email          string            `json:"email"`
	ProfilePicture *string           `json:"profile_picture,omitempty"`
	Bio            *string           `json:"bio,omitempty"`
	Friendship     *FriendshipStatus `json:"friendship,omitempty"`
}

// UserSearchResponse is returned by GET /api/social/search-users.
type UserSearchResponse struct {
	APIResponse
	Users []UserSearchHit `json:"users"`
}
