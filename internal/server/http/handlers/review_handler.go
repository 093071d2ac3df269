package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/projectdesk/internal/domain/errors"
	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/server/http/dto"
)

const (
	msgReviewPublished = "Отзыв получен и опубликован"
	msgReviewPending   = "Отзыв получен и ожидает модерации"
	msgReviewApproved  = "Отзыв одобрен"
	msgReviewNotFound  = "Review not found"
	msgUnapproveDenied = "Only approval is supported"
)

type reviewFacade interface {
	SubmitReview(ctx context.Context, in model.ReviewInput) (*model.Review, error)
	ApproveReview(ctx context.Context, id int64) (*model.Review, error)
	Reviews(ctx context.Context) ([]model.Review, error)
	PublishedReviews(ctx context.Context) ([]model.Review, error)
}

// ReviewHandler manages review intake, listing and moderation.
type ReviewHandler struct {
	facade reviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade reviewFacade) *ReviewHandler {
	useJSONFieldNames()
	return &ReviewHandler{facade: facade}
}

// Submit handles POST /api/review.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dto.ReviewRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	review, err := h.facade.SubmitReview(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err)
		return
	}

	message := msgReviewPending
	if review.Approved {
		message = msgReviewPublished
	}
	c.JSON(http.StatusCreated, dto.ReviewCreatedResponse{
		Success:  true,
		Message:  message,
		ID:       review.ID,
		Approved: review.Approved,
	})
}

// List handles GET /api/reviews. Unapproved reviews are included.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.Reviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilReviews(reviews))
}

// Published handles GET /api/reviews/published.
func (h *ReviewHandler) Published(c *gin.Context) {
	reviews, err := h.facade.PublishedReviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilReviews(reviews))
}

// Approve handles PUT /api/review/:id.
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgReviewNotFound})
		return
	}

	var req dto.ApprovalRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	if req.Approved != nil && !*req.Approved {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgUnapproveDenied})
		return
	}

	review, err := h.facade.ApproveReview(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgReviewNotFound})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApprovalResponse{Success: true, Message: msgReviewApproved, Review: *review})
}

func nonNilReviews(reviews []model.Review) []model.Review {
	if reviews == nil {
		return []model.Review{}
	}
	return reviews
}
