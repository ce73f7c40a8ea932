package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querylab/groupboard/internal/api/handler/v1/response"
	"github.com/querylab/groupboard/internal/domain"
	"github.com/querylab/groupboard/internal/repository"
	"github.com/querylab/groupboard/internal/repository/dao"
	"github.com/querylab/groupboard/internal/service"
)

type stubNight struct {
	sleeping bool
}

func (s *stubNight) Sleeping() bool {
	return s.sleeping
}

type fakeSlotStore struct {
	slots map[string][]byte
}

func (s *fakeSlotStore) Read(_ context.Context, key string) ([]byte, error) {
	raw, ok := s.slots[key]
	if !ok {
		return nil, dao.ErrSlotNotFound
	}

	return raw, nil
}

func (s *fakeSlotStore) Write(_ context.Context, key string, value []byte) error {
	s.slots[key] = value

	return nil
}

func seedGroups(t *testing.T, groups []domain.Group) *fakeSlotStore {
	t.Helper()

	raw, err := json.Marshal(groups)
	require.NoError(t, err)

	return &fakeSlotStore{slots: map[string][]byte{"groups": raw}}
}

func newGroupRouter(t *testing.T, night NightClock, groups ...domain.Group) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewGroupService(repository.NewGroupRepository(seedGroups(t, groups)))
	h := NewGroupHandler(svc, night)

	router := gin.New()
	router.GET("/groups", h.HandleGetGroups)
	router.POST("/groups", h.HandleCreateGroup)
	router.GET("/groups/:groupID", h.HandleGetGroup)
	router.DELETE("/groups/:groupID", h.HandleDeleteGroup)
	router.GET("/groups/:groupID/avatar", h.HandleGetAvatar)
	router.PATCH("/groups/:groupID/name", h.HandleRenameGroup)
	router.POST("/groups/:groupID/members", h.HandleAddMember)
	router.DELETE("/groups/:groupID/members/:position", h.HandleRemoveMember)
	router.POST("/groups/:groupID/points", h.HandleAdjustPoints)

	return router
}

func TestHandleGetGroups(t *testing.T) {
	router := newGroupRouter(t, &stubNight{},
		domain.Group{ID: "1", Name: "SQL Warriors", Points: 100},
		domain.Group{ID: "2", Name: "Database Legends", Points: 300},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/groups", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var groups []domain.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "Database Legends", groups[0].Name, "highest points first")
}

func TestHandleGetGroup(t *testing.T) {
	router := newGroupRouter(t, &stubNight{}, domain.Group{ID: "1", Name: "SQL Warriors"})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/groups/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/groups/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetAvatar(t *testing.T) {
	mascot := domain.Group{
		ID:        "1",
		Character: domain.Character{Type: domain.CharacterAthleticWoman, Expression: domain.ExpressionHappy},
	}
	other := domain.Group{
		ID:        "2",
		Character: domain.Character{Type: domain.CharacterScholar, Expression: domain.ExpressionFocused},
	}

	t.Run("daytime", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{}, mascot, other)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/groups/2/avatar", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.AvatarResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.ExpressionFocused, resp.Expression)
		assert.False(t, resp.Sleeping)
		assert.Empty(t, resp.ModelPath, "only the mascot group has a model file")
		assert.Equal(t, domain.AppearanceFor(domain.CharacterScholar), resp.Appearance)
	})

	t.Run("night overrides the expression", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{sleeping: true}, mascot, other)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/groups/2/avatar", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.AvatarResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.ExpressionSleeping, resp.Expression)
		assert.True(t, resp.Sleeping)
		assert.Equal(t, domain.StyleFor(domain.ExpressionSleeping), resp.Style)
	})

	t.Run("mascot group carries the model path", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{}, mascot, other)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/groups/1/avatar", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.AvatarResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/models/pikachu/pikachu.gltf", resp.ModelPath)
	})
}

func TestHandleAdjustPoints(t *testing.T) {
	t.Run("applies the change and returns the transaction", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{}, domain.Group{ID: "1", Points: 100})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/1/points",
			strings.NewReader(`{"points":150,"reason":"Major penalty","type":"deduct"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.AdjustPointsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Group.Points, "balance clamps at zero")
		assert.Equal(t, 150, resp.Transaction.Points)
		assert.Equal(t, domain.TransactionDeduct, resp.Transaction.Type)
		assert.WithinDuration(t, time.Now(), resp.Transaction.Timestamp, time.Minute)
	})

	t.Run("invalid payload", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{}, domain.Group{ID: "1", Points: 100})

		for _, body := range []string{
			`{"points":0,"reason":"x","type":"add"}`,
			`{"points":10,"type":"add"}`,
			`{"points":10,"reason":"x","type":"transfer"}`,
			`not json`,
		} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/groups/1/points", strings.NewReader(body))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/99/points",
			strings.NewReader(`{"points":10,"reason":"x","type":"add"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleRenameGroup(t *testing.T) {
	router := newGroupRouter(t, &stubNight{}, domain.Group{ID: "1", Name: "SQL Warriors"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/groups/1/name", strings.NewReader(`{"name":"Query Masters"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var group domain.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))
	assert.Equal(t, "Query Masters", group.Name)
}

func TestHandleMembers(t *testing.T) {
	t.Run("add and remove", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{}, domain.Group{ID: "1", Members: []string{"Alice Johnson"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups/1/members", strings.NewReader(`{"name":"Bob Smith"}`))
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/groups/1/members/0", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var group domain.Group
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))
		assert.Equal(t, []string{"Bob Smith"}, group.Members)
	})

	t.Run("non-numeric position", func(t *testing.T) {
		router := newGroupRouter(t, &stubNight{}, domain.Group{ID: "1"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/groups/1/members/first", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleCreateAndDeleteGroup(t *testing.T) {
	router := newGroupRouter(t, &stubNight{})

	t.Run("create", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups",
			strings.NewReader(`{"name":"Index Ninjas","character":"scholar","members":["Alice Johnson"]}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var group domain.Group
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))
		assert.NotEmpty(t, group.ID)
		assert.Equal(t, domain.ExpressionHappy, group.Character.Expression, "expression defaults to happy")

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/groups/"+group.ID, nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown character type", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/groups",
			strings.NewReader(`{"name":"Index Ninjas","character":"wizard"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
