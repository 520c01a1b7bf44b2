package handler

import (
	"net/http"
	"time"

	"vglist/backend/internal/hub"
	"vglist/backend/internal/identity"
	"vglist/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"k8s.io/utils/ptr"
)

// region --- DTOs ---

type ReviewInput struct {
	GameID      int64    `json:"game_id" binding:"required,min=1"`
	Description string   `json:"description" binding:"required,min=1,max=10000"`
	Score       *float64 `json:"score" binding:"omitempty,min=0,max=5,halfstep"`
}

type ReviewUpdateInput struct {
	Description *string  `json:"description" binding:"omitempty,min=1,max=10000"`
	Score       *float64 `json:"score" binding:"omitempty,min=0,max=5,halfstep"`
}

type ReviewResponse struct {
	ID          uint           `json:"id"`
	AuthorID    string         `json:"author_id"`
	GameID      int64          `json:"game_id"`
	Score       *int           `json:"score"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Game        *GameResponse  `json:"game,omitempty"`
	Author      *identity.User `json:"author,omitempty"`
}

func newReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		GameID:      r.GameID,
		Score:       r.Score,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Game:        gameRef(r.Game),
	}
}

type reviewsByGameQuery struct {
	PageQuery
	GameID int64 `form:"game_id" binding:"required,min=1"`
}

// ReviewCreatedEvent is the live feed event type for new reviews.
const ReviewCreatedEvent = "review.created"

// endregion

func optionalStoredScore(score *float64) *int {
	if score == nil {
		return nil
	}
	return ptr.To(storedScore(*score))
}

// withAuthors hydrates every review with its author in one directory call.
func (h *Handler) withAuthors(c *gin.Context, reviews []models.Review) ([]ReviewResponse, error) {
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.AuthorID)
	}
	authors, err := h.lookupAuthors(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}
	resp := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out := newReviewResponse(r)
		author := authors[r.AuthorID]
		out.Author = &author
		resp = append(resp, out)
	}
	return resp, nil
}

// CreateReview godoc
// @Summary      Review a game
// @Description  The optional score is stored doubled. New reviews are pushed to the live feed.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  ReviewInput  true  "Review"
// @Success      201  {object}  ReviewResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	review := models.Review{
		AuthorID:    callerID(c),
		GameID:      input.GameID,
		Description: input.Description,
		Score:       optionalStoredScore(input.Score),
	}
	if err := h.reviews.Create(c.Request.Context(), &review); err != nil {
		h.respondError(c, err)
		return
	}

	resp := newReviewResponse(review)
	if err := h.hub.Broadcast(hub.ReviewsTopic, hub.Event{Type: ReviewCreatedEvent, Payload: resp}); err != nil {
		h.log.Warn("Failed to broadcast review", zap.Uint("review_id", review.ID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateReview godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int                true  "Review ID"
// @Param        input  body  ReviewUpdateInput  true  "Fields to change"
// @Success      200  {object}  ReviewResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/reviews/{id} [put]
func (h *Handler) UpdateReview(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	var input ReviewUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	review, err := h.reviews.Update(c.Request.Context(), uri.ID, callerID(c), input.Description, optionalStoredScore(input.Score))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReviewResponse(*review))
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Review ID"
// @Success      200  {object}  ReviewResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/reviews/{id} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	review, err := h.reviews.Delete(c.Request.Context(), uri.ID, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReviewResponse(*review))
}

// GetReviewsByGameID godoc
// @Summary      Reviews of a game
// @Description  Newest first, with authors.
// @Tags         reviews
// @Produce      json
// @Param        game_id  query  int  true   "Game ID"
// @Param        limit    query  int  false  "Page size (1-100)"
// @Param        cursor   query  int  false  "First review ID of the page"
// @Success      200  {object}  PaginatedResponse[ReviewResponse]
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse "Author could not be resolved"
// @Router       /api/v1/reviews [get]
func (h *Handler) GetReviewsByGameID(c *gin.Context) {
	var q reviewsByGameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	page, err := h.reviews.ListByGame(c.Request.Context(), q.GameID, q.page())
	if err != nil {
		h.respondError(c, err)
		return
	}
	items, err := h.withAuthors(c, page.Items)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PaginatedResponse[ReviewResponse]{Items: items, NextCursor: page.NextCursor})
}

// GetReviewsByUsername godoc
// @Summary      Reviews of a user
// @Description  Newest first, with games. Unknown users yield an empty page.
// @Tags         reviews
// @Produce      json
// @Param        username  path   string  true   "Username"
// @Param        limit     query  int     false  "Page size (1-100)"
// @Param        cursor    query  int     false  "First review ID of the page"
// @Success      200  {object}  PaginatedResponse[ReviewResponse]
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/users/{username}/reviews [get]
func (h *Handler) GetReviewsByUsername(c *gin.Context) {
	var uri usernameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	ctx := c.Request.Context()
	user, err := h.resolveUserOrNil(ctx, uri.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if user == nil {
		resp := emptyPage[ReviewResponse]()
		resp.Count = nil
		c.JSON(http.StatusOK, resp)
		return
	}
	page, err := h.reviews.ListByAuthor(ctx, user.ID, q.page())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPaginatedResponse(page, func(r models.Review) ReviewResponse {
		out := newReviewResponse(r)
		out.Author = user
		return out
	}))
}

// GetReviewByAuthorAndGameID godoc
// @Summary      Look up a review
// @Description  Returns null when either key is missing or nothing matches.
// @Tags         reviews
// @Produce      json
// @Param        author_id  query  string  false  "Author identity"
// @Param        game_id    query  int     false  "Game ID"
// @Success      200  {object}  ReviewResponse
// @Failure      500  {object}  ErrorResponse "Author could not be resolved"
// @Router       /api/v1/reviews/lookup [get]
func (h *Handler) GetReviewByAuthorAndGameID(c *gin.Context) {
	var q lookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	if !q.complete() {
		c.JSON(http.StatusOK, nil)
		return
	}
	review, err := h.reviews.GetByAuthorAndGame(c.Request.Context(), q.AuthorID, *q.GameID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if review == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	items, err := h.withAuthors(c, []models.Review{*review})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items[0])
}

// GetReviewCountByUsername godoc
// @Summary      Number of reviews written by a user
// @Tags         reviews
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {integer}  int
// @Router       /api/v1/users/{username}/reviews/count [get]
func (h *Handler) GetReviewCountByUsername(c *gin.Context) {
	h.countByUsername(c, h.reviews.CountByAuthor)
}

// GetRecentReviews godoc
// @Summary      Latest reviews
// @Description  The 10 newest reviews with games and authors.
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   ReviewResponse
// @Failure      500  {object}  ErrorResponse "Author could not be resolved"
// @Router       /api/v1/reviews/recent [get]
func (h *Handler) GetRecentReviews(c *gin.Context) {
	reviews, err := h.reviews.Recent(c.Request.Context(), recentReviewsLimit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	items, err := h.withAuthors(c, reviews)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// StreamReviews godoc
// @Summary      Live review feed
// @Description  Server-sent events; one "review" event per created review.
// @Tags         reviews
// @Produce      text/event-stream
// @Success      200  {string}  string
// @Router       /api/v1/reviews/stream [get]
func (h *Handler) StreamReviews(c *gin.Context) {
	client := h.hub.Subscribe(hub.ReviewsTopic)
	defer h.hub.Unsubscribe(hub.ReviewsTopic, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("review", string(msg))
			c.Writer.Flush()
		}
	}
}
