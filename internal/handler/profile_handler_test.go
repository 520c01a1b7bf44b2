package handler

import (
	"net/http"
	"strings"
	"testing"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByUsername(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/users/fake", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fakeId", decode[identity.User](t, w).ID)

	w = env.do(http.MethodGet, "/api/v1/users/notARealUser", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperr.KindNotFound, decode[ErrorResponse](t, w).Code)
}

func TestGetUsersByQuery(t *testing.T) {
	env := newTestEnv(t)

	users := decode[[]identity.User](t, env.do(http.MethodGet, "/api/v1/users?q=FAK", "", nil))
	require.Len(t, users, 1)
	assert.Equal(t, "fakeId", users[0].ID)

	none := env.do(http.MethodGet, "/api/v1/users?q=zzz", "", nil)
	assert.Equal(t, "[]", none.Body.String())
}

func TestBioLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/users/fake/bio", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPost, "/api/v1/bio", "fakeId", obj{"bio": "Mostly RPGs."})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "fakeId", decode[BioResponse](t, w).UserID)

	w = env.do(http.MethodPost, "/api/v1/bio", "fakeId", obj{"bio": "twice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/v1/bio", "fakeId", obj{"bio": "RPGs and racing."})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/users/fake/bio", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RPGs and racing.", decode[BioResponse](t, w).Bio)

	w = env.do(http.MethodDelete, "/api/v1/bio", "fakeId", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RPGs and racing.", decode[BioResponse](t, w).Bio)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/api/v1/bio", "fakeId", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodPut, "/api/v1/bio", "fakeId", obj{"bio": "x"}).Code)
}

func TestBioValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/bio", "fakeId", obj{"bio": strings.Repeat("a", 161)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/bio", "fakeId", obj{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/bio", "fakeId", obj{"bio": strings.Repeat("é", 160)})
	assert.Equal(t, http.StatusCreated, w.Code, "length counts characters")
}

func TestBioOfUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/users/notARealUser/bio", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode[ErrorResponse](t, w).Error)
}
