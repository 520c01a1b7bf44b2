package handler

import (
	"net/http"
	"time"

	"vglist/backend/internal/identity"
	"vglist/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type BioInput struct {
	Bio *string `json:"bio" binding:"required,max=160"`
}

type BioResponse struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBioResponse(p models.Profile) BioResponse {
	return BioResponse{ID: p.ID, UserID: p.UserID, Bio: p.Bio, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

type usersQuery struct {
	Q string `form:"q" binding:"max=100"`
}

// endregion

// GetUsersByQuery godoc
// @Summary      Search users
// @Description  Searches the identity directory by username.
// @Tags         profile
// @Produce      json
// @Param        q  query  string  false  "Username fragment"
// @Success      200  {array}   identity.User
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/users [get]
func (h *Handler) GetUsersByQuery(c *gin.Context) {
	var q usersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.invalid(c, err)
		return
	}
	users, err := h.users.SearchUsers(c.Request.Context(), q.Q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if users == nil {
		users = []identity.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByUsername godoc
// @Summary      Get a user
// @Tags         profile
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  identity.User
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/users/{username} [get]
func (h *Handler) GetUserByUsername(c *gin.Context) {
	var uri usernameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	user, err := h.resolveUser(c.Request.Context(), uri.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetBioByUsername godoc
// @Summary      Get the bio of a user
// @Tags         profile
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  BioResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/users/{username}/bio [get]
func (h *Handler) GetBioByUsername(c *gin.Context) {
	var uri usernameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.invalid(c, err)
		return
	}
	ctx := c.Request.Context()
	user, err := h.resolveUser(ctx, uri.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	profile, err := h.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBioResponse(*profile))
}

// CreateBio godoc
// @Summary      Create the caller's bio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  BioInput  true  "Bio"
// @Success      201  {object}  BioResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or bio already exists"
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/bio [post]
func (h *Handler) CreateBio(c *gin.Context) {
	var input BioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	profile, err := h.profiles.Create(c.Request.Context(), callerID(c), *input.Bio)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBioResponse(*profile))
}

// UpdateBio godoc
// @Summary      Update the caller's bio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  BioInput  true  "Bio"
// @Success      200  {object}  BioResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/bio [put]
func (h *Handler) UpdateBio(c *gin.Context) {
	var input BioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.invalid(c, err)
		return
	}
	profile, err := h.profiles.Update(c.Request.Context(), callerID(c), *input.Bio)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBioResponse(*profile))
}

// DeleteBio godoc
// @Summary      Delete the caller's bio
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  BioResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/v1/bio [delete]
func (h *Handler) DeleteBio(c *gin.Context) {
	profile, err := h.profiles.Delete(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBioResponse(*profile))
}
