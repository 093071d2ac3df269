package dto

import "github.com/polkiloo/projectdesk/internal/domain/model"

// ReviewRequest describes payload of POST /api/review.
type ReviewRequest struct {
	Name       string       `json:"name" binding:"required"`
	Email      string       `json:"email"`
	Project    string       `json:"project"`
	Rating     model.Rating `json:"rating"`
	Text       string       `json:"text" binding:"required"`
	Permission bool         `json:"permission"`
}

// Input converts request into use case input.
func (r ReviewRequest) Input() model.ReviewInput {
	return model.ReviewInput{
		Name:       r.Name,
		Email:      r.Email,
		Project:    r.Project,
		Rating:     r.Rating,
		Text:       r.Text,
		Permission: r.Permission,
	}
}

// ReviewCreatedResponse acknowledges an accepted review.
type ReviewCreatedResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	Approved bool   `json:"approved"`
}

// ApprovalRequest is the body of PUT /api/review/:id. A missing flag means approve.
type ApprovalRequest struct {
	Approved *bool `json:"approved"`
}

// ApprovalResponse returns the approved review.
type ApprovalResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Review  model.Review `json:"review"`
}
