package handler

import (
	"context"
	"net/http"
	"time"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// StatusFlagsInput are the four play-state flags. Missing flags are false.
type StatusFlagsInput struct {
	IsPlaying     bool `json:"is_playing"`
	HasPlayed     bool `json:"has_played"`
	HasDropped    bool `json:"has_dropped"`
	HasBacklogged bool `json:"has_backlogged"`
}

func (in StatusFlagsInput) flags() models.StatusFlags {
	return models.StatusFlags{
		IsPlaying:     in.IsPlaying,
		HasPlayed:     in.HasPlayed,
		HasDropped:    in.HasDropped,
		HasBacklogged: in.HasBacklogged,
	}
}

type StatusInput struct {
	GameID int64 `json:"game_id" binding:"required,min=1"`
	StatusFlagsInput
}

type StatusResponse struct {
	ID            uint          `json:"id"`
	AuthorID      string        `json:"author_id"`
	GameID        int64         `json:"game_id"`
	IsPlaying     bool          `json:"is_playing"`
	HasPlayed     bool          `json:"has_played"`
	HasDropped    bool          `json:"has_dropped"`
	HasBacklogged bool          `json:"has_backlogged"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Game          *GameResponse `json:"game,omitempty"`
}

func newStatusResponse(s models.Status) StatusResponse {
	return StatusResponse{
		ID:            s.ID,
		AuthorID:      s.AuthorID,
		GameID:        s.GameID,
		IsPlaying:     s.IsPlaying,
		HasPlayed:     s.HasPlayed,
		HasDropped:    s.HasDropped,
		HasBacklogged: s.HasBacklogged,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Game:          gameRef(s.Game),
	}
}

type statusesQuery struct {
	PageQuery
	Status models.StatusFilter `form:"status" binding:"omitempty,oneof=all playing played dropped backlogged"`
}

// endregion

// countByUsername answers a count procedure. Unknown users count zero.
func (h *Handler) countByUsername(c *gin.Context, count func(ctx context.Context, authorID string) (int64, error)) {
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
		c.JSON(http.StatusOK, 0)
		return
	}
	n, err := count(ctx, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// CreateStatus godoc
// @Summary      Set the play status of a game
// @Description  At least one flag must be true.
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  StatusInput  true  "Status"
// @Success      201  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/statuses [post]
func (h *Handler) CreateStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	flags := input.flags()
	if flags.Empty() {
		h.respondError(c, apperr.Validation("At least one status flag must be set"))
		return
	}
	status, err := h.statuses.Create(c.Request.Context(), callerID(c), input.GameID, flags)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newStatusResponse(*status))
}

// UpdateStatus godoc
// @Summary      Update a play status
// @Description  Clearing every flag deletes the status and answers 204.
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int               true  "Status ID"
// @Param        input  body  StatusFlagsInput  true  "Flags"
// @Success      200  {object}  StatusResponse
// @Success      204  "Status deleted"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/statuses/{id} [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	var input StatusFlagsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	status, err := h.statuses.UpdateOrDeleteIfEmpty(c.Request.Context(), uri.ID, callerID(c), input.flags())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if status == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newStatusResponse(*status))
}

// DeleteStatus godoc
// @Summary      Delete a play status
// @Tags         statuses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Status ID"
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/statuses/{id} [delete]
func (h *Handler) DeleteStatus(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	status, err := h.statuses.Delete(c.Request.Context(), uri.ID, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStatusResponse(*status))
}

// GetStatusByAuthorAndGameID godoc
// @Summary      Look up a play status
// @Description  Returns null when either key is missing or nothing matches.
// @Tags         statuses
// @Produce      json
// @Param        author_id  query  string  false  "Author identity"
// @Param        game_id    query  int     false  "Game ID"
// @Success      200  {object}  StatusResponse
// @Router       /api/v1/statuses/lookup [get]
func (h *Handler) GetStatusByAuthorAndGameID(c *gin.Context) {
	var q lookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	if !q.complete() {
		c.JSON(http.StatusOK, nil)
		return
	}
	status, err := h.statuses.GetByAuthorAndGame(c.Request.Context(), q.AuthorID, *q.GameID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if status == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, newStatusResponse(*status))
}

// GetStatusByUsername godoc
// @Summary      Play statuses of a user
// @Description  Newest first, with games, filtered by flag. Unknown users yield an empty page.
// @Tags         statuses
// @Produce      json
// @Param        username  path   string  true   "Username"
// @Param        status    query  string  false  "Flag filter"  Enums(all, playing, played, dropped, backlogged)
// @Param        limit     query  int     false  "Page size (1-100)"
// @Param        cursor    query  int     false  "First status ID of the page"
// @Success      200  {object}  PaginatedResponse[StatusResponse]
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/users/{username}/statuses [get]
func (h *Handler) GetStatusByUsername(c *gin.Context) {
	var uri usernameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	var q statusesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	filter := q.Status
	if filter == "" {
		filter = models.StatusFilterAll
	}

	ctx := c.Request.Context()
	user, err := h.resolveUserOrNil(ctx, uri.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, emptyPage[StatusResponse]())
		return
	}
	page, err := h.statuses.ListByAuthor(ctx, user.ID, filter, q.page())
	if err != nil {
		h.respondError(c, err)
		return
	}
	count, err := h.statuses.CountByAuthor(ctx, user.ID, filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := newPaginatedResponse(page, newStatusResponse)
	resp.Count = &count
	c.JSON(http.StatusOK, resp)
}

// GetGamesPlayedCountByUsername godoc
// @Summary      Number of games a user has played
// @Tags         statuses
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {integer}  int
// @Router       /api/v1/users/{username}/statuses/played/count [get]
func (h *Handler) GetGamesPlayedCountByUsername(c *gin.Context) {
	h.countByUsername(c, func(ctx context.Context, authorID string) (int64, error) {
		return h.statuses.CountByAuthor(ctx, authorID, models.StatusFilterPlayed)
	})
}

// GetRecentlyPlayedByUsername godoc
// @Summary      Recently played games of a user
// @Description  The 5 most recently updated statuses that are playing or played.
// @Tags         statuses
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {array}  StatusResponse
// @Router       /api/v1/users/{username}/statuses/recent [get]
func (h *Handler) GetRecentlyPlayedByUsername(c *gin.Context) {
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
	resp := []StatusResponse{}
	if user == nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	statuses, err := h.statuses.RecentlyPlayed(ctx, user.ID, recentPlayedLimit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	for _, s := range statuses {
		resp = append(resp, newStatusResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}
