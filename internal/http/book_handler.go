package http

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

// Routes requiring a document id only match 24-hex-character segments;
// anything else falls through to a plain 404.
var hex24 = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// List supports one optional filter: ?quantity=n keeps books with
// quantity strictly greater than n, the literal "null" (or absence)
// means no filter, and a malformed number matches nothing.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	params := usecase.ListParams{}
	if q := r.URL.Query().Get("quantity"); q != "" && q != "null" {
		n, err := strconv.Atoi(q)
		if err != nil {
			JSON(w, http.StatusOK, []entity.Document{})
			return
		}
		params.MinQuantity = &n
	}

	docs, err := h.repo.List(r.Context(), params)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if docs == nil {
		docs = []entity.Document{}
	}
	JSON(w, http.StatusOK, docs)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc entity.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		JSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	ack, err := h.repo.Create(r.Context(), doc)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, ack)
}

// Subtree dispatches everything under /api/books/:
//
//	GET   /api/books/{category}            books in a category
//	GET   /api/books/bookName/{name}       one book by name
//	GET   /api/books/singleBook/{id}       one book by 24-hex id
//	PUT   /api/books/singleBook/{id}       merge-upsert by 24-hex id
//	PATCH /api/books/singleBook/{name}     partial update by name
func (h *BookHandler) Subtree(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/books/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	if rest == "" {
		http.NotFound(w, r)
		return
	}
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.listByCategory(w, r, parts[0])
	case len(parts) == 2 && parts[0] == "bookName":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.getByName(w, r, parts[1])
	case len(parts) == 2 && parts[0] == "singleBook":
		h.singleBook(w, r, parts[1])
	default:
		http.NotFound(w, r)
	}
}

func (h *BookHandler) singleBook(w http.ResponseWriter, r *http.Request, segment string) {
	switch r.Method {
	case http.MethodGet:
		if !hex24.MatchString(segment) {
			http.NotFound(w, r)
			return
		}
		h.getByID(w, r, segment)
	case http.MethodPut:
		if !hex24.MatchString(segment) {
			http.NotFound(w, r)
			return
		}
		h.upsertByID(w, r, segment)
	case http.MethodPatch:
		// the PATCH route addresses books by name, not id
		h.patchByName(w, r, segment)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *BookHandler) listByCategory(w http.ResponseWriter, r *http.Request, category string) {
	docs, err := h.repo.ListByCategory(r.Context(), category)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if docs == nil {
		docs = []entity.Document{}
	}
	JSON(w, http.StatusOK, docs)
}

func (h *BookHandler) getByName(w http.ResponseWriter, r *http.Request, name string) {
	doc, err := h.repo.GetByName(r.Context(), name)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, doc)
}

func (h *BookHandler) getByID(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, doc)
}

func (h *BookHandler) upsertByID(w http.ResponseWriter, r *http.Request, id string) {
	var doc entity.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		JSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	ack, err := h.repo.UpsertByID(r.Context(), id, doc)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, ack)
}

func (h *BookHandler) patchByName(w http.ResponseWriter, r *http.Request, name string) {
	var doc entity.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		JSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	ack, err := h.repo.PatchByName(r.Context(), name, doc)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, ack)
}
