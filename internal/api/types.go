package api

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/craftnet/backend/internal/models"
)

// Shared response shaping: every mutable resource carries the owner's
// username, an is_owner flag computed against the requesting identity and
// relative created_on/updated_on strings.

// ProfileResponse represents a profile with its aggregate counts
type ProfileResponse struct {
	ID             string  `json:"id"`
	Owner          string  `json:"owner"`
	IsOwner        bool    `json:"is_owner"`
	Name           string  `json:"name"`
	Job            string  `json:"job"`
	Image          string  `json:"image"`
	EmployerID     *string `json:"employer_id,omitempty"`
	EmployerName   string  `json:"employer_name,omitempty"`
	CreatedOn      string  `json:"created_on"`
	UpdatedOn      string  `json:"updated_on"`
	PostsCount     int64   `json:"posts_count"`
	FollowersCount int64   `json:"followers_count"`
	FollowingCount int64   `json:"following_count"`
	ApprovalCount  int64   `json:"approval_count"`
}

func newProfileResponse(p *models.Profile, identity *uuid.UUID, imageURL string) ProfileResponse {
	resp := ProfileResponse{
		ID:             p.ID.String(),
		Owner:          p.User.Username,
		IsOwner:        identity != nil && *identity == p.UserID,
		Name:           p.Name,
		Job:            p.Job,
		Image:          imageURL,
		CreatedOn:      humanize.Time(p.CreatedAt),
		UpdatedOn:      humanize.Time(p.UpdatedAt),
		PostsCount:     p.PostsCount,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		ApprovalCount:  p.ApprovalCount,
	}
	if p.EmployerID != nil {
		id := p.EmployerID.String()
		resp.EmployerID = &id
	}
	if p.Employer != nil {
		resp.EmployerName = p.Employer.Name
	}
	return resp
}

// CompanyResponse represents a company with its employee count
type CompanyResponse struct {
	ID            string `json:"id"`
	Owner         string `json:"owner"`
	IsOwner       bool   `json:"is_owner"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	EmployeeCount int64  `json:"employee_count"`
	CreatedOn     string `json:"created_on"`
	UpdatedOn     string `json:"updated_on"`
}

func newCompanyResponse(co *models.Company, identity *uuid.UUID) CompanyResponse {
	return CompanyResponse{
		ID:            co.ID.String(),
		Owner:         co.Owner.Username,
		IsOwner:       identity != nil && *identity == co.OwnerID,
		Name:          co.Name,
		Location:      co.Location,
		EmployeeCount: co.EmployeeCount,
		CreatedOn:     humanize.Time(co.CreatedAt),
		UpdatedOn:     humanize.Time(co.UpdatedAt),
	}
}

// PostResponse represents a post
type PostResponse struct {
	ID        string `json:"id"`
	Owner     string `json:"owner"`
	IsOwner   bool   `json:"is_owner"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

func newPostResponse(p *models.Post, identity *uuid.UUID) PostResponse {
	return PostResponse{
		ID:        p.ID.String(),
		Owner:     p.Owner.Username,
		IsOwner:   identity != nil && *identity == p.OwnerID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedOn: humanize.Time(p.CreatedAt),
		UpdatedOn: humanize.Time(p.UpdatedAt),
	}
}

// CommentResponse represents a comment. The parent post reference is only
// filled on the detail representation; the list omits it.
type CommentResponse struct {
	ID        string `json:"id"`
	Owner     string `json:"owner"`
	IsOwner   bool   `json:"is_owner"`
	Content   string `json:"content"`
	PostID    string `json:"post_id,omitempty"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

func newCommentResponse(cm *models.Comment, identity *uuid.UUID, includePost bool) CommentResponse {
	resp := CommentResponse{
		ID:        cm.ID.String(),
		Owner:     cm.Owner.Username,
		IsOwner:   identity != nil && *identity == cm.OwnerID,
		Content:   cm.Content,
		CreatedOn: humanize.Time(cm.CreatedAt),
		UpdatedOn: humanize.Time(cm.UpdatedAt),
	}
	if includePost {
		resp.PostID = cm.PostID.String()
	}
	return resp
}

// FollowerResponse represents a follower edge
type FollowerResponse struct {
	ID               string `json:"id"`
	Owner            string `json:"owner"`
	FollowedID       string `json:"followed_id"`
	FollowedUsername string `json:"followed_username"`
	CreatedOn        string `json:"created_on"`
}

func newFollowerResponse(f *models.Follower) FollowerResponse {
	return FollowerResponse{
		ID:               f.ID.String(),
		Owner:            f.Owner.Username,
		FollowedID:       f.FollowedID.String(),
		FollowedUsername: f.Followed.Username,
		CreatedOn:        humanize.Time(f.CreatedAt),
	}
}
