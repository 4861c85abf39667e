// Package api implements the public and admin HTTP endpoints using chi.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/checksum"
	"github.com/eihojp/corpsite/internal/mailer"
	"github.com/eihojp/corpsite/internal/sitesvc"
)

// Handler holds the public route handlers.
type Handler struct {
	svc    *sitesvc.Service
	mail   *mailer.Mailer
	mailOn bool
	logger *slog.Logger
}

// NewHandler creates the public handler set. mail may be nil when SMTP is
// not configured.
func NewHandler(svc *sitesvc.Service, mail *mailer.Mailer, mailOn bool, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, mail: mail, mailOn: mailOn, logger: logger}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// PublicHome handles GET /api/public/home. The payload is cheap to build but
// fetched on every page view, so it carries an ETag computed from the
// serialized body.
func (h *Handler) PublicHome(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Home()
	if err != nil {
		h.logger.Error("public home failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	body, err := json.Marshal(view)
	if err != nil {
		h.logger.Error("public home encode failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	etag := checksum.ETag(body)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// PublicNews handles GET /api/public/news?limit=N.
func (h *Handler) PublicNews(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	links, err := h.svc.PublicNews(limit)
	if err != nil {
		h.logger.Error("public news failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if links == nil {
		links = []sitesvc.NewsLink{}
	}
	writeJSON(w, http.StatusOK, links)
}

// NewsList handles GET /api/news?q=&page=&sort=.
func (h *Handler) NewsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))

	view, err := h.svc.PublishedList(q.Get("q"), q.Get("sort"), page)
	if err != nil {
		h.logger.Error("news list failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if view.Items == nil {
		view.Items = []sitesvc.NewsSummary{}
	}
	writeJSON(w, http.StatusOK, view)
}

// NewsDetail handles GET /api/news/{id}.
func (h *Handler) NewsDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("news not found"))
		return
	}
	view, err := h.svc.NewsDetail(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("news not found"))
		} else {
			h.logger.Error("news detail failed", slog.Int64("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ServiceDetail handles GET /api/services/{index}.
func (h *Handler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("service not found"))
		return
	}
	view, err := h.svc.ServiceDetail(index)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("service not found"))
		} else {
			h.logger.Error("service detail failed", slog.Int("index", index), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Contact handles POST /api/contact.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if !h.mailOn || h.mail == nil {
		writeJSON(w, http.StatusInternalServerError, errorBody("contact mail is not configured"))
		return
	}

	err := h.mail.SendContact(r.Context(), mailer.Submission{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("contact mail failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to send email"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
