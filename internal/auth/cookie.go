package auth

import "net/http"

// CookieName is the session cookie the browser client sends back on
// protected routes.
const CookieName = "token"

// SetTokenCookie attaches the signed token for a cross-site browser
// client: HttpOnly keeps scripts out, SameSite=None plus Secure lets
// the separately-hosted frontend send it.
func SetTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearTokenCookie expires the cookie with the same attributes it was
// set with.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
