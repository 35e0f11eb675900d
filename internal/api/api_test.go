package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailydiet/server/internal/models"
	"dailydiet/server/internal/session"
	"dailydiet/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is an in-memory Store used by the handler tests.
type fakeStore struct {
	users []models.User
	meals []models.Meal

	// err, when set, is returned by every operation.
	err error
}

var errStore = errors.New("store unavailable")

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeStore) FindUserByCredentials(_ context.Context, username, password string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Username == username && f.users[i].Password == password {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateMeal(_ context.Context, meal *models.Meal) error {
	if f.err != nil {
		return f.err
	}
	f.meals = append(f.meals, *meal)
	return nil
}

func (f *fakeStore) ListMeals(_ context.Context, userID string) ([]models.Meal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Meal
	for _, m := range f.meals {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) GetMeal(_ context.Context, id, userID string) (*models.Meal, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.meals {
		if f.meals[i].ID == id && f.meals[i].UserID == userID {
			m := f.meals[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateMeal(_ context.Context, id, userID string, fields store.MealFields) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.meals {
		if f.meals[i].ID == id && f.meals[i].UserID == userID {
			f.meals[i].Name = fields.Name
			f.meals[i].Description = fields.Description
			f.meals[i].MealDate = fields.MealDate
			f.meals[i].OnDiet = fields.OnDiet
		}
	}
	return nil
}

func (f *fakeStore) DeleteMeal(_ context.Context, id, userID string) error {
	if f.err != nil {
		return f.err
	}
	kept := f.meals[:0]
	for _, m := range f.meals {
		if m.ID != id || m.UserID != userID {
			kept = append(kept, m)
		}
	}
	f.meals = kept
	return nil
}

// doRequest runs one request through the full router, optionally with a
// session cookie attached.
func doRequest(srv *Server, method, path, body, sessionID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

// sessionCookie digs the session cookie out of a recorded response, or nil.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestHealthz(t *testing.T) {
	srv := NewServer(&fakeStore{})
	w := doRequest(srv, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, w.Code)
}
