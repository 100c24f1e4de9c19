package handler

import (
	"log/slog"
	"net/http"
)

// HomeHandler serves the plaintext landing pages.
type HomeHandler struct {
	logger *slog.Logger
}

func NewHomeHandler(l *slog.Logger) *HomeHandler {
	if l == nil {
		panic("logger cannot be nil")
	}
	return &HomeHandler{logger: l.With("component", "HomeHandler")}
}

func respondText(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(message))
}

// Home handles GET /home
// @Summary Landing page
// @Tags Home
// @Produce plain
// @Success 200 {string} string "Welcome to Maverick Bank!"
// @Router /home [get]
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	respondText(w, "Welcome to Maverick Bank!")
}

// CustomerHome handles GET /customer
// @Summary Customer landing page
// @Tags Home
// @Produce plain
// @Success 200 {string} string "Welcome, Customer!"
// @Router /customer [get]
func (h *HomeHandler) CustomerHome(w http.ResponseWriter, r *http.Request) {
	respondText(w, "Welcome, Customer!")
}

// LogoutSuccess handles GET /logout-success
// @Summary Logout confirmation page
// @Tags Home
// @Produce plain
// @Success 200 {string} string "You have been successfully logged out."
// @Router /logout-success [get]
func (h *HomeHandler) LogoutSuccess(w http.ResponseWriter, r *http.Request) {
	respondText(w, "You have been successfully logged out.")
}
