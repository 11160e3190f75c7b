package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/NafizUddin/Quickreads-Server-Side/internal/http"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/auth"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/store/mocks"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/testutil"
)

type testApp struct {
	app      *application
	books    *mocks.MockBookRepository
	borrowed *mocks.MockBorrowedBookRepository
}

func newTestApp(t *testing.T, ping func(context.Context) error) testApp {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	categories := mocks.NewMockCategoryRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	books := mocks.NewMockBookRepository(ctrl)
	borrowed := mocks.NewMockBorrowedBookRepository(ctrl)

	if ping == nil {
		ping = func(context.Context) error { return nil }
	}

	return testApp{
		app: &application{
			secret:   testutil.TestSecret,
			ping:     ping,
			auth:     apphttp.NewAuthHandler(testutil.TestSecret),
			category: apphttp.NewCategoryHandler(categories),
			user:     apphttp.NewUserHandler(users),
			book:     apphttp.NewBookHandler(books),
			borrowed: apphttp.NewBorrowedBookHandler(borrowed, books),
		},
		books:    books,
		borrowed: borrowed,
	}
}

func TestRouting_Liveness(t *testing.T) {
	ta := newTestApp(t, nil)

	w := httptest.NewRecorder()
	ta.app.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running perfectly", w.Body.String())
}

func TestRouting_UnknownPath(t *testing.T) {
	ta := newTestApp(t, nil)

	w := httptest.NewRecorder()
	ta.app.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouting_Readyz(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		ta := newTestApp(t, nil)
		w := httptest.NewRecorder()
		ta.app.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store down", func(t *testing.T) {
		ta := newTestApp(t, func(context.Context) error { return errors.New("down") })
		w := httptest.NewRecorder()
		ta.app.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouting_ProtectedBooksRequireToken(t *testing.T) {
	ta := newTestApp(t, nil)

	w := httptest.NewRecorder()
	ta.app.routes().ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/books", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Unauthorized Access", resp.Body["message"])
}

// Issue a token through the real endpoint, then replay its cookie
// against the protected listing.
func TestRouting_AccessTokenThenProtectedRoute(t *testing.T) {
	ta := newTestApp(t, nil)
	router := ta.app.routes()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/access-token",
		map[string]any{"email": "reader@example.com"}))
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, auth.CookieName, cookies[0].Name)

	ta.books.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return([]entity.Document{}, nil)

	r := testutil.NewRequest(http.MethodGet, "/api/books", nil)
	r.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouting_MalformedBorrowedID(t *testing.T) {
	ta := newTestApp(t, nil)

	w := httptest.NewRecorder()
	ta.app.routes().ServeHTTP(w,
		httptest.NewRequest(http.MethodDelete, "/api/borrowedBooks/not-an-id", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	ta := newTestApp(t, nil)
	router := ta.app.routes()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/access-token"},
		{http.MethodPut, "/api/auth/logout"},
		{http.MethodDelete, "/api/users"},
		{http.MethodPatch, "/api/borrowedBooks"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tt.method, tt.path)
	}
}
