package handler

import (
	"net/http"
	"time"

	"vglist/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameResponse struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Cover           *string    `json:"cover"`
	ReleaseDate     *time.Time `json:"release_date"`
	Summary         *string    `json:"summary"`
	IgdbRating      *float64   `json:"igdb_rating"`
	IgdbRatingCount *int       `json:"igdb_rating_count"`
}

func newGameResponse(g models.Game) GameResponse {
	return GameResponse{
		ID:              g.ID,
		Name:            g.Name,
		Slug:            g.Slug,
		Cover:           g.Cover,
		ReleaseDate:     g.ReleaseDate,
		Summary:         g.Summary,
		IgdbRating:      g.IgdbRating,
		IgdbRatingCount: g.IgdbRatingCount,
	}
}

// gameRef returns the preloaded game of a row, or nil when it was not loaded.
func gameRef(g models.Game) *GameResponse {
	if g.ID == 0 {
		return nil
	}
	resp := newGameResponse(g)
	return &resp
}

type gameSearchQuery struct {
	Name string `form:"name" binding:"required,min=1,max=255"`
}

// endregion

// GetAllGames godoc
// @Summary      Browse the catalog
// @Description  Pages through games in ascending ID order.
// @Tags         games
// @Produce      json
// @Param        limit   query  int  false  "Page size (1-100)"
// @Param        cursor  query  int  false  "First game ID of the page"
// @Success      200  {object}  PaginatedResponse[GameResponse]
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/games [get]
func (h *Handler) GetAllGames(c *gin.Context) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	page, err := h.games.List(c.Request.Context(), q.page())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPaginatedResponse(page, newGameResponse))
}

// GetGamesByName godoc
// @Summary      Search games by name
// @Description  Case-insensitive substring match, at most 10 results.
// @Tags         games
// @Produce      json
// @Param        name  query  string  true  "Name fragment"
// @Success      200  {array}   GameResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/games/search [get]
func (h *Handler) GetGamesByName(c *gin.Context) {
	var q gameSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	games, err := h.games.SearchByName(c.Request.Context(), q.Name, gameSearchLimit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := make([]GameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, newGameResponse(g))
	}
	c.JSON(http.StatusOK, resp)
}

// GetGameBySlug godoc
// @Summary      Get a game
// @Tags         games
// @Produce      json
// @Param        slug  path  string  true  "Game slug"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/games/{slug} [get]
func (h *Handler) GetGameBySlug(c *gin.Context) {
	var uri slugURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	game, err := h.games.GetBySlug(c.Request.Context(), uri.Slug)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// GetRatingsBySlug godoc
// @Summary      Rating aggregate of a game
// @Description  Average stored score (0-10) and number of ratings.
// @Tags         ratings
// @Produce      json
// @Param        slug  path  string  true  "Game slug"
// @Success      200  {object}  repository.Aggregate
// @Router       /api/v1/games/{slug}/ratings [get]
func (h *Handler) GetRatingsBySlug(c *gin.Context) {
	var uri slugURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	agg, err := h.ratings.AggregateBySlug(c.Request.Context(), uri.Slug)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

