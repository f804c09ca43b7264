package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-resume-backend/internal/delivery/http/middleware"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCandidateUC struct {
	mock.Mock
}

func (m *MockCandidateUC) ListForUser(ctx context.Context, userID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) GetForUser(ctx context.Context, userID, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) Create(ctx context.Context, userID string, upd domain.CandidateUpdate) (*domain.Candidate, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) Update(ctx context.Context, id, userID string, upd domain.CandidateUpdate) (*domain.Candidate, error) {
	args := m.Called(ctx, id, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) Delete(ctx context.Context, id, userID string) bool {
	return m.Called(ctx, id, userID).Bool(0)
}

func (m *MockCandidateUC) ListAll(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

// newTestRouter mounts the candidate routes behind a stub identity
// instead of the real auth middleware.
func newTestRouter(uc *MockCandidateUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), "user1")
		c.Next()
	})
	v1.NewCandidateHandler(api, uc)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCandidateRoutes(t *testing.T) {
	t.Run("Should list the caller's candidates", func(t *testing.T) {
		uc := new(MockCandidateUC)
		uc.On("ListForUser", mock.Anything, "user1").Return([]domain.Candidate{
			{ID: "c1", UserID: "user1", FirstName: "Ada"},
		}, nil)
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodGet, "/api/candidates", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)

		var got []domain.Candidate
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "Ada", got[0].FirstName)
	})

	t.Run("Should answer 404 for an absent candidate", func(t *testing.T) {
		uc := new(MockCandidateUC)
		uc.On("GetForUser", mock.Anything, "user1", "ghost").Return(nil, nil)
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodGet, "/api/candidates/ghost", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Should answer 403 when the update hits someone else's candidate", func(t *testing.T) {
		uc := new(MockCandidateUC)
		uc.On("Update", mock.Anything, "c1", "user1", mock.Anything).
			Return(nil, apperror.Forbidden("candidate belongs to a different user"))
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodPut, "/api/candidates/c1",
			`{"firstName":"Ada","lastName":"Lovelace"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Should answer 400 for a payload failing validation", func(t *testing.T) {
		uc := new(MockCandidateUC)
		r := newTestRouter(uc)

		w, _ := doJSON(t, r, http.MethodPost, "/api/candidates", `{"firstName":"Ada"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should answer 500 when the create comes back absent", func(t *testing.T) {
		uc := new(MockCandidateUC)
		uc.On("Create", mock.Anything, "user1", mock.Anything).Return(nil, nil)
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodPost, "/api/candidates",
			`{"firstName":"Ada","lastName":"Lovelace"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Should answer 200 on a successful delete", func(t *testing.T) {
		uc := new(MockCandidateUC)
		uc.On("Delete", mock.Anything, "c1", "user1").Return(true)
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodDelete, "/api/candidates/c1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
	})
}
