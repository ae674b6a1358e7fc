package types

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Job      string `json:"job"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for updating a profile.
// Pointer fields distinguish "not provided" from "clear the value".
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Job        *string `json:"job"`
	ImageKey   *string `json:"image_key"`
	EmployerID *string `json:"employer_id"`
}

// CreateCompanyRequest represents the request body for creating a company
type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Location string `json:"location" binding:"max=100"`
}

// UpdateCompanyRequest represents the request body for updating a company
type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content"`
}

// UpdatePostRequest represents the request body for updating a post
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CreateCommentRequest represents the request body for creating a comment
type CreateCommentRequest struct {
	PostID  string `json:"post_id" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest represents the request body for updating a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateFollowerRequest represents the request body for following a user
type CreateFollowerRequest struct {
	FollowedID string `json:"followed_id" binding:"required,uuid"`
}
