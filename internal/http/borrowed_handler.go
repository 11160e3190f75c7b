package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

type BorrowedBookHandler struct {
	repo  usecase.BorrowedBookRepository
	books usecase.BookRepository
}

func NewBorrowedBookHandler(repo usecase.BorrowedBookRepository, books usecase.BookRepository) *BorrowedBookHandler {
	return &BorrowedBookHandler{repo: repo, books: books}
}

func (h *BorrowedBookHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	docs, err := h.repo.List(r.Context(), email)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if docs == nil {
		docs = []entity.Document{}
	}
	JSON(w, http.StatusOK, docs)
}

// Create records the borrow. When the document names a book, one copy
// of it is taken first with a conditional decrement, so the ledger
// entry and the catalog count stay consistent even under concurrent
// borrows of the last copy.
func (h *BorrowedBookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc entity.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		JSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	name := bookName(doc)
	if name != "" {
		err := h.books.TakeCopy(r.Context(), name)
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Book not found")
			return
		case errors.Is(err, usecase.ErrNoCopies):
			JSONError(w, http.StatusConflict, "No available copies")
			return
		case err != nil:
			JSONError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	ack, err := h.repo.Create(r.Context(), doc)
	if err != nil {
		if name != "" {
			_ = h.books.ReturnCopy(r.Context(), name)
		}
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, ack)
}

// Delete removes a ledger entry by id and puts the copy back on the
// shelf when the entry named a book. Deleting an unknown id reports
// deletedCount 0 without error.
func (h *BorrowedBookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/borrowedBooks/"
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if !hex24.MatchString(id) {
		http.NotFound(w, r)
		return
	}

	doc, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ack, err := h.repo.DeleteByID(r.Context(), id)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if ack.DeletedCount > 0 {
		if name := bookName(doc); name != "" {
			_ = h.books.ReturnCopy(r.Context(), name)
		}
	}
	JSON(w, http.StatusOK, ack)
}

func bookName(doc entity.Document) string {
	if doc == nil {
		return ""
	}
	if name, ok := doc["name"].(string); ok {
		return name
	}
	return ""
}
