// Package handlers implements the HTTP JSON API. Every response carries
// ok: true/false; failures carry a human-readable error string from the
// injected message catalog.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/Emeralddossou/detecporc/internal/apperr"
	"github.com/Emeralddossou/detecporc/internal/auth"
	"github.com/Emeralddossou/detecporc/internal/metrics"
	"github.com/Emeralddossou/detecporc/internal/middleware"
	"github.com/Emeralddossou/detecporc/internal/models"
	"github.com/Emeralddossou/detecporc/internal/rank"
	"github.com/Emeralddossou/detecporc/internal/store"
)

// maxBodyBytes caps JSON request bodies at 200 KB.
const maxBodyBytes = 200 << 10

type Handler struct {
	Points  *store.PointStore
	Pending *store.PendingStore
	Gate    *auth.Gate
	Store   *sessions.CookieStore
	Msg     Messages
	Log     *slog.Logger
}

func New(points *store.PointStore, pending *store.PendingStore, gate *auth.Gate, sessionStore *sessions.CookieStore, msg Messages, log *slog.Logger) *Handler {
	return &Handler{
		Points:  points,
		Pending: pending,
		Gate:    gate,
		Store:   sessionStore,
		Msg:     msg,
		Log:     log,
	}
}

// Register mounts the API routes. Admin routes sit behind the session
// gate so an unauthenticated call never reaches a store.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/points", h.PublicPoints)
	r.Post("/api/suggest", h.Suggest)
	r.Post("/api/login", h.Login)
	r.Post("/api/logout", h.Logout)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(h.Store, h.Msg.Unauthorized))
		r.Get("/points", h.AdminPoints)
		r.Post("/points", h.AdminCreatePoint)
		r.Put("/points/{id}", h.AdminUpdatePoint)
		r.Delete("/points/{id}", h.AdminDeletePoint)
		r.Get("/pending", h.AdminPending)
		r.Post("/pending/{id}/approve", h.AdminApprove)
		r.Delete("/pending/{id}", h.AdminReject)
	})
}

// PublicPoints serves the approved point set. With lat/lng, q or max_km
// query parameters the set is ranked and annotated server-side;
// otherwise it is returned in repository order, unannotated.
func (h *Handler) PublicPoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.Points.List()
	if err != nil {
		h.respondStoreError(w, err, h.Msg.PointNotFound)
		return
	}

	q := r.URL.Query()
	if q.Get("lat") == "" && q.Get("lng") == "" && q.Get("q") == "" && q.Get("max_km") == "" {
		h.respond(w, http.StatusOK, map[string]any{"ok": true, "points": points})
		return
	}

	var origin *models.Position
	if latStr, lngStr := q.Get("lat"), q.Get("lng"); latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			origin = &models.Position{Lat: lat, Lng: lng}
		}
	}

	filters := models.Filters{Query: q.Get("q")}
	if v := q.Get("max_km"); v != "" {
		if maxKm, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxDistanceKm = &maxKm
		}
	}

	ranked := rank.Rank(points, origin, filters)
	h.respond(w, http.StatusOK, map[string]any{"ok": true, "points": ranked})
}

// Suggest queues a publicly submitted point for moderation.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var draft models.PointDraft
	if !h.decode(w, r, &draft) {
		return
	}

	if _, err := h.Pending.Submit(draft); err != nil {
		h.respondStoreError(w, err, h.Msg.SuggestionNotFound)
		return
	}
	metrics.SuggestionsSubmittedTotal.Inc()
	h.respond(w, http.StatusCreated, map[string]any{"ok": true})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !h.decode(w, r, &creds) {
		return
	}

	if !h.Gate.Verify(creds.Username, creds.Password) {
		h.fail(w, http.StatusUnauthorized, h.Msg.InvalidCredentials)
		return
	}

	session, _ := h.Store.Get(r, middleware.SessionName)
	session.Values["is_admin"] = true
	session.Values["username"] = creds.Username
	if err := session.Save(r, w); err != nil {
		h.Log.Error("session save failed", "err", err)
		h.fail(w, http.StatusInternalServerError, h.Msg.Server)
		return
	}

	h.respond(w, http.StatusOK, map[string]any{"ok": true, "username": creds.Username})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.Log.Error("session destroy failed", "err", err)
	}
	h.respond(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) AdminPoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.Points.List()
	if err != nil {
		h.respondStoreError(w, err, h.Msg.PointNotFound)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"ok": true, "points": points})
}

func (h *Handler) AdminCreatePoint(w http.ResponseWriter, r *http.Request) {
	var draft models.PointDraft
	if !h.decode(w, r, &draft) {
		return
	}

	point, err := h.Points.Create(draft)
	if err != nil {
		h.respondStoreError(w, err, h.Msg.PointNotFound)
		return
	}
	h.respond(w, http.StatusCreated, map[string]any{"ok": true, "point": point})
}

func (h *Handler) AdminUpdatePoint(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pointID(w, r)
	if !ok {
		return
	}

	var patch models.PointPatch
	if !h.decode(w, r, &patch) {
		return
	}

	point, err := h.Points.Update(id, patch)
	if err != nil {
		h.respondStoreError(w, err, h.Msg.PointNotFound)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"ok": true, "point": point})
}

func (h *Handler) AdminDeletePoint(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pointID(w, r)
	if !ok {
		return
	}

	if err := h.Points.Delete(id); err != nil {
		h.respondStoreError(w, err, h.Msg.PointNotFound)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) AdminPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Pending.List()
	if err != nil {
		h.respondStoreError(w, err, h.Msg.SuggestionNotFound)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"ok": true, "pending": pending})
}

// AdminApprove is the two-store transition: the suggestion leaves the
// queue first, then the repository allocates a fresh id for it. If the
// repository write fails the suggestion is already gone from the queue;
// its fields are logged so the operator can re-enter it by hand.
func (h *Handler) AdminApprove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	suggestion, err := h.Pending.Remove(id)
	if err != nil {
		h.respondStoreError(w, err, h.Msg.SuggestionNotFound)
		return
	}

	draft := models.PointDraft{
		Name:    suggestion.Name,
		Lat:     &suggestion.Lat,
		Lng:     &suggestion.Lng,
		Address: suggestion.Address,
		Phone:   suggestion.Phone,
		Hours:   suggestion.Hours,
		Comment: suggestion.Comment,
	}
	if _, err := h.Points.Create(draft); err != nil {
		h.Log.Error("approve lost suggestion after queue removal",
			"suggestion", suggestion.ID, "name", suggestion.Name,
			"lat", suggestion.Lat, "lng", suggestion.Lng, "err", err)
		h.fail(w, http.StatusInternalServerError, h.Msg.Server)
		return
	}

	metrics.SuggestionsApprovedTotal.Inc()
	h.respond(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) AdminReject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.Pending.Remove(id); err != nil {
		h.respondStoreError(w, err, h.Msg.SuggestionNotFound)
		return
	}
	metrics.SuggestionsRejectedTotal.Inc()
	h.respond(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) pointID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, h.Msg.InvalidID)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.fail(w, http.StatusBadRequest, h.Msg.InvalidBody)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Log.Error("response encode failed", "err", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, map[string]any{"ok": false, "error": message})
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		h.fail(w, http.StatusBadRequest, h.Msg.RequiredFields)
	case errors.Is(err, apperr.ErrNotFound):
		h.fail(w, http.StatusNotFound, notFound)
	default:
		h.Log.Error("store operation failed", "err", err)
		h.fail(w, http.StatusInternalServerError, h.Msg.Server)
	}
}
