package http

import (
	"net/http"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/auth"
)

type AuthHandler struct {
	secret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{secret: secret}
}

// AccessTokenHandler signs whatever identity payload the client sends
// and hands it back as the session cookie. There is no credential
// check here: the frontend authenticates users elsewhere and only asks
// this service to mint a session for the claimed identity.
func (h *AuthHandler) AccessTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		JSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	token, err := auth.IssueToken(h.secret, payload)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	auth.SetTokenCookie(w, token)
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// LogoutHandler clears the cookie. Any request body is ignored.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w)
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
