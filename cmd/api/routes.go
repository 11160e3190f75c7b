package main

import (
	"context"
	"net/http"
	"time"

	apphttp "github.com/NafizUddin/Quickreads-Server-Side/internal/http"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/httpx"
)

type application struct {
	secret   string
	ping     func(context.Context) error
	auth     *apphttp.AuthHandler
	category *apphttp.CategoryHandler
	user     *apphttp.UserHandler
	book     *apphttp.BookHandler
	borrowed *apphttp.BorrowedBookHandler
}

func (app *application) routes() *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Server is running perfectly"))
	})
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := app.ping(pingCtx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("/api/auth/access-token", postOnly(app.auth.AccessTokenHandler))
	router.HandleFunc("/api/auth/logout", postOnly(app.auth.LogoutHandler))

	router.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.category.List(w, r)
		case http.MethodPost:
			app.category.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	router.HandleFunc("/api/categories/", getOnly(app.category.GetByName))

	router.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.user.List(w, r)
		case http.MethodPost:
			app.user.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// only the full catalog listing and book creation need a session
	protectedBooks := httpx.AuthMiddleware(app.secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.book.List(w, r)
		case http.MethodPost:
			app.book.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	router.Handle("/api/books", protectedBooks)
	router.HandleFunc("/api/books/", app.book.Subtree)

	router.HandleFunc("/api/borrowedBooks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.borrowed.List(w, r)
		case http.MethodPost:
			app.borrowed.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	router.HandleFunc("/api/borrowedBooks/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		app.borrowed.Delete(w, r)
	})

	return router
}

func postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}
