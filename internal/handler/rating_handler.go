package handler

import (
	"net/http"
	"time"

	"vglist/backend/internal/identity"
	"vglist/backend/internal/models"
	"vglist/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RatingInput carries a score on the 0 to 5 half-step scale shown to users.
type RatingInput struct {
	Score  *float64 `json:"score" binding:"required,min=0,max=5,halfstep"`
	GameID int64    `json:"game_id" binding:"required,min=1"`
}

// RatingResponse reports the stored 0 to 10 score.
type RatingResponse struct {
	ID        uint           `json:"id"`
	AuthorID  string         `json:"author_id"`
	GameID    int64          `json:"game_id"`
	Score     int            `json:"score"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Game      *GameResponse  `json:"game,omitempty"`
	Author    *identity.User `json:"author,omitempty"`
}

func newRatingResponse(r models.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		GameID:    r.GameID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Game:      gameRef(r.Game),
	}
}

// endregion

// CreateRatingAndStatus godoc
// @Summary      Rate a game
// @Description  Stores the score doubled. Creates a played status when the caller has none for the game.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  RatingInput  true  "Rating"
// @Success      201  {object}  RatingResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/ratings [post]
func (h *Handler) CreateRatingAndStatus(c *gin.Context) {
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	rating, err := h.ratings.CreateWithStatus(c.Request.Context(), callerID(c), input.GameID, storedScore(*input.Score))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRatingResponse(*rating))
}

// UpdateRating godoc
// @Summary      Update a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int          true  "Rating ID"
// @Param        input  body  RatingInput  true  "Rating"
// @Success      200  {object}  RatingResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/ratings/{id} [put]
func (h *Handler) UpdateRating(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	rating, err := h.ratings.Update(c.Request.Context(), uri.ID, callerID(c), input.GameID, storedScore(*input.Score))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRatingResponse(*rating))
}

// DeleteRating godoc
// @Summary      Delete a rating
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Rating ID"
// @Success      200  {object}  RatingResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/ratings/{id} [delete]
func (h *Handler) DeleteRating(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	rating, err := h.ratings.Delete(c.Request.Context(), uri.ID, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRatingResponse(*rating))
}

// GetRatingByAuthorAndGameID godoc
// @Summary      Look up a rating
// @Description  Returns null when either key is missing or nothing matches.
// @Tags         ratings
// @Produce      json
// @Param        author_id  query  string  false  "Author identity"
// @Param        game_id    query  int     false  "Game ID"
// @Success      200  {object}  RatingResponse
// @Failure      500  {object}  ErrorResponse "Author could not be resolved"
// @Router       /api/v1/ratings/lookup [get]
func (h *Handler) GetRatingByAuthorAndGameID(c *gin.Context) {
	var q lookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	if !q.complete() {
		c.JSON(http.StatusOK, nil)
		return
	}
	ctx := c.Request.Context()
	rating, err := h.ratings.GetByAuthorAndGame(ctx, q.AuthorID, *q.GameID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rating == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	authors, err := h.lookupAuthors(ctx, []string{rating.AuthorID})
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := newRatingResponse(*rating)
	author := authors[rating.AuthorID]
	resp.Author = &author
	c.JSON(http.StatusOK, resp)
}

// GetAverageScoreByUsername godoc
// @Summary      Average score given by a user
// @Description  Average stored score (0-10) and number of ratings. Unknown users have no ratings.
// @Tags         ratings
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  repository.Aggregate
// @Router       /api/v1/users/{username}/ratings/average [get]
func (h *Handler) GetAverageScoreByUsername(c *gin.Context) {
	var uri usernameURI
	if err := c.ShouldBindUri(&uri); err != nil {
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
		c.JSON(http.StatusOK, repository.Aggregate{})
		return
	}
	agg, err := h.ratings.AggregateByAuthor(ctx, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// GetRatingsByUsername godoc
// @Summary      Ratings of a user
// @Description  Newest first, with games. Unknown users yield an empty page.
// @Tags         ratings
// @Produce      json
// @Param        username  path   string  true   "Username"
// @Param        limit     query  int     false  "Page size (1-100)"
// @Param        cursor    query  int     false  "First rating ID of the page"
// @Success      200  {object}  PaginatedResponse[RatingResponse]
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/users/{username}/ratings [get]
func (h *Handler) GetRatingsByUsername(c *gin.Context) {
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
		c.JSON(http.StatusOK, emptyPage[RatingResponse]())
		return
	}

	page, err := h.ratings.ListByAuthor(ctx, user.ID, q.page())
	if err != nil {
		h.respondError(c, err)
		return
	}
	count, err := h.ratings.CountByAuthor(ctx, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := newPaginatedResponse(page, func(r models.Rating) RatingResponse {
		out := newRatingResponse(r)
		out.Author = user
		return out
	})
	resp.Count = &count
	c.JSON(http.StatusOK, resp)
}
