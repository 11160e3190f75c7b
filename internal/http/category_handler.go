package http

import (
	"net/http"
	"strings"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

type CategoryHandler struct {
	repo usecase.CategoryRepository
}

func NewCategoryHandler(repo usecase.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if docs == nil {
		docs = []entity.Document{}
	}
	JSON(w, http.StatusOK, docs)
}

// GetByName looks up one category by exact name. An unknown name is a
// null body, not a 404.
func (h *CategoryHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/categories/"
	name := strings.TrimPrefix(r.URL.Path, prefix)
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	doc, err := h.repo.GetByName(r.Context(), name)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	JSON(w, http.StatusOK, doc)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
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
