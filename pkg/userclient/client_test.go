package userclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-resume-backend/pkg/userclient"

	"github.com/stretchr/testify/assert"
)

func TestFindByID(t *testing.T) {
	t.Run("Should forward the caller's Authorization header", func(t *testing.T) {
		var gotAuth, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"user1","email":"ada@example.com","emailPassword":"$2a$10$hash"}`))
		}))
		defer srv.Close()

		client := userclient.New(srv.URL)
		user, err := client.FindByID(context.Background(), "Basic abc", "user1")
		assert.NoError(t, err)
		assert.Equal(t, "Basic abc", gotAuth)
		assert.Equal(t, "/api/users/user1/id", gotPath)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("Should map 404 to an absent user, not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := userclient.New(srv.URL)
		user, err := client.FindByID(context.Background(), "", "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Should surface other statuses as errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := userclient.New(srv.URL)
		_, err := client.FindByID(context.Background(), "", "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestGeneratePassword(t *testing.T) {
	t.Run("Should post to the password endpoint and return the plaintext", func(t *testing.T) {
		var gotMethod, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"password":"fresh-secret"}`))
		}))
		defer srv.Close()

		client := userclient.New(srv.URL)
		password, err := client.GeneratePassword(context.Background(), "Basic abc", "user1")
		assert.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/api/users/user1/password", gotPath)
		assert.Equal(t, "fresh-secret", password)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Should send the signup payload and decode the created user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/users", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"new-user","email":"ada@example.com"}`))
		}))
		defer srv.Close()

		client := userclient.New(srv.URL)
		user, err := client.CreateUser(context.Background(), "ada@example.com", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "new-user", user.ID)
	})
}
