package model

import "time"

// Review is a testimonial pending or granted public display.
// Approved implies the review may be shown publicly.
type Review struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Project    string     `json:"project,omitempty"`
	Rating     Rating     `json:"rating"`
	Text       string     `json:"text"`
	Permission bool       `json:"permission"`
	Timestamp  time.Time  `json:"timestamp"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approvedAt"`
}

// Approve marks the review approved at the given time. It reports false when
// the review was already approved, leaving ApprovedAt untouched.
func (r *Review) Approve(at time.Time) bool {
	if r.Approved {
		return false
	}
	r.Approved = true
	r.ApprovedAt = &at
	return true
}

// ReviewInput carries client supplied review fields.
type ReviewInput struct {
	Name       string
	Email      string
	Project    string
	Rating     Rating
	Text       string
	Permission bool
}
