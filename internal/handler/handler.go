// Package handler exposes the vglist procedures over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/auth"
	"vglist/backend/internal/hub"
	"vglist/backend/internal/identity"
	"vglist/backend/internal/ingest"
	"vglist/backend/internal/logger"
	"vglist/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	recentReviewsLimit = 10
	recentPlayedLimit  = 5
	gameSearchLimit    = 10
)

// Deps are the collaborators a Handler needs. Seeder may be nil when
// ingestion is not configured.
type Deps struct {
	Games    *repository.GameRepository
	Profiles *repository.ProfileRepository
	Ratings  *repository.RatingRepository
	Reviews  *repository.ReviewRepository
	Statuses *repository.StatusRepository
	Users    identity.Directory
	Hub      *hub.Hub
	Seeder   ingest.Runner
	Log      *logger.Logger
}

// Handler serves every HTTP procedure.
type Handler struct {
	games    *repository.GameRepository
	profiles *repository.ProfileRepository
	ratings  *repository.RatingRepository
	reviews  *repository.ReviewRepository
	statuses *repository.StatusRepository
	users    identity.Directory
	hub      *hub.Hub
	seeder   ingest.Runner
	log      *logger.Logger
}

func New(d Deps) *Handler {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	h := d.Hub
	if h == nil {
		h = hub.New()
	}
	return &Handler{
		games:    d.Games,
		profiles: d.Profiles,
		ratings:  d.Ratings,
		reviews:  d.Reviews,
		statuses: d.Statuses,
		users:    d.Users,
		hub:      h,
		seeder:   d.Seeder,
		log:      log,
	}
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  apperr.Kind `json:"code"`
}

// respondError renders err with the status of its kind. Unknown errors are
// logged and reported as internal.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		h.log.Error("Request failed", err,
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("requestID")))
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(apperr.HTTPStatus(kind), ErrorResponse{Error: apperr.Message(err), Code: kind})
}

func (h *Handler) invalid(c *gin.Context, err error) {
	h.respondError(c, apperr.Validation(err.Error()))
}

// callerID returns the identity of the caller. Routes that call it sit behind
// auth.RequireIdentity.
func callerID(c *gin.Context) string {
	caller, _ := auth.CallerFrom(c)
	return caller.ID
}

// resolveUser looks a username up in the directory. A missing user is
// reported as a not-found error.
func (h *Handler) resolveUser(ctx context.Context, username string) (*identity.User, error) {
	user, err := h.users.UserByUsername(ctx, username)
	if errors.Is(err, identity.ErrUserNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to look up user", err)
	}
	return user, nil
}

// resolveUserOrNil is resolveUser for listings, where an unknown username
// yields an empty result instead of an error.
func (h *Handler) resolveUserOrNil(ctx context.Context, username string) (*identity.User, error) {
	user, err := h.resolveUser(ctx, username)
	if apperr.IsKind(err, apperr.KindNotFound) {
		return nil, nil
	}
	return user, err
}

// lookupAuthors hydrates the authors of a result set in one directory call.
func (h *Handler) lookupAuthors(ctx context.Context, ids []string) (map[string]identity.User, error) {
	authors, err := identity.LookupAuthors(ctx, h.users, ids)
	if err != nil {
		return nil, apperr.Internal("Failed to resolve authors", err)
	}
	return authors, nil
}

type usernameURI struct {
	Username string `uri:"username" binding:"required"`
}

type idURI struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

type slugURI struct {
	Slug string `uri:"slug" binding:"required"`
}

// lookupQuery holds the optional keys of the by-author-and-game lookups.
type lookupQuery struct {
	AuthorID string `form:"author_id"`
	GameID   *int64 `form:"game_id"`
}

func (q lookupQuery) complete() bool {
	return q.AuthorID != "" && q.GameID != nil
}

// Ping godoc
// @Summary      Health check
// @Tags         operations
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
