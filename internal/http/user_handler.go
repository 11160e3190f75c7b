package http

import (
	"net/http"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

type UserHandler struct {
	repo usecase.UserRepository
}

func NewUserHandler(repo usecase.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
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

// Create stores the registration document as-is. Uniqueness and
// credential handling belong to the frontend's auth provider.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
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
