package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/assets"
	"github.com/eihojp/corpsite/internal/auth"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/sitesvc"
	"github.com/eihojp/corpsite/internal/sse"
	"github.com/eihojp/corpsite/internal/store"
)

const maxUploadBytes = 50 << 20 // 50 MB per request

// AdminHandler holds the session-guarded admin handlers.
type AdminHandler struct {
	svc      *sitesvc.Service
	uploads  *assets.Resolver
	library  *assets.Library
	broker   *sse.Broker
	sessions *auth.Sessions
	user     string
	passHash string
	logger   *slog.Logger
}

// NewAdminHandler creates the admin handler set.
func NewAdminHandler(svc *sitesvc.Service, uploads *assets.Resolver, library *assets.Library,
	broker *sse.Broker, sessions *auth.Sessions, user, passHash string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		uploads:  uploads,
		library:  library,
		broker:   broker,
		sessions: sessions,
		user:     user,
		passHash: passHash,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid admin session.
func (h *AdminHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.sessions.Username(r)
		if !ok || user != h.user {
			h.writeUploadError(w, apperr.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Login handles POST /admin/login with either a JSON or a form body.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	if req.Username != h.user || !auth.VerifyPassword(req.Password, h.passHash) {
		h.logger.Warn("login rejected", slog.String("username", req.Username))
		h.writeUploadError(w, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized))
		return
	}
	if err := h.sessions.Issue(w, req.Username); err != nil {
		h.logger.Error("session issue failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout handles GET /admin/logout.
func (h *AdminHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.sessions.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetHome handles GET /api/admin/home: the normalized record for form
// redisplay.
func (h *AdminHandler) GetHome(w http.ResponseWriter, _ *http.Request) {
	view, err := h.svc.EditHome()
	if err != nil {
		h.logger.Error("admin home failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateHome handles POST /api/admin/home. A JSON body is decoded directly
// into the patch; a form body goes through the field normalizer first.
func (h *AdminHandler) UpdateHome(w http.ResponseWriter, r *http.Request) {
	var patch models.HomePatch
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			if err := r.ParseForm(); err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody("invalid form body"))
				return
			}
		}
		patch = patchFromForm(r.Form)
	}

	updated, err := h.svc.UpdateHome(patch)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalid) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			h.logger.Error("home update failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	h.broker.PublishHomeUpdated()
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "updated_at": updated.UpdatedAt})
}

// newsInputFromForm builds the service input from a multipart submission,
// storing any uploads first.
func (h *AdminHandler) newsInputFromForm(r *http.Request) (sitesvc.NewsInput, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return sitesvc.NewsInput{}, invalidf("invalid multipart body")
	}

	in := sitesvc.NewsInput{
		Title:       r.FormValue("title"),
		Body:        r.FormValue("body"),
		IsPublished: formBool(r.FormValue("is_published")),
	}

	imageHeaders := fileHeaders(r.MultipartForm, "image", "images")
	for _, fh := range imageHeaders {
		up, err := readUpload(fh)
		if err != nil {
			return sitesvc.NewsInput{}, err
		}
		// Non-image files in the image field are skipped, not stored. The
		// rest of the batch still goes through.
		if !assets.IsImage(up.ContentType) {
			h.logger.Warn("skipping non-image upload",
				slog.String("filename", fh.Filename), slog.String("content_type", up.ContentType))
			continue
		}
		url, err := h.uploads.Put(r.Context(), assets.FolderNews, up)
		if err != nil {
			return sitesvc.NewsInput{}, err
		}
		in.NewImages = append(in.NewImages, url)
	}

	for _, fh := range fileHeaders(r.MultipartForm, "attachment", "attachments") {
		up, err := readUpload(fh)
		if err != nil {
			return sitesvc.NewsInput{}, err
		}
		url, err := h.uploads.Put(r.Context(), assets.FolderNews, up)
		if err != nil {
			return sitesvc.NewsInput{}, err
		}
		name := fh.Filename
		if name == "" {
			name = "文件"
		}
		in.NewFiles = append(in.NewFiles, models.FileRef{Name: name, URL: url})
	}
	return in, nil
}

// CreateNews handles POST /api/admin/news (multipart).
func (h *AdminHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	in, err := h.newsInputFromForm(r)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}
	n, err := h.svc.CreateNews(in)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}
	h.broker.PublishNewsEvent("created", n.ID)
	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": n.ID})
}

// UpdateNews handles PUT /api/admin/news/{id} (multipart).
func (h *AdminHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("news not found"))
		return
	}
	in, err := h.newsInputFromForm(r)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}
	n, err := h.svc.UpdateNews(id, in)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}
	h.broker.PublishNewsEvent("updated", n.ID)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": n.ID})
}

// DeleteNews handles DELETE /api/admin/news/{id}.
func (h *AdminHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("news not found"))
		return
	}
	if err := h.svc.DeleteNews(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("news not found"))
		} else {
			h.logger.Error("news delete failed", slog.Int64("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	h.broker.PublishNewsEvent("deleted", id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListNews handles GET /api/admin/news: the admin table with drafts.
func (h *AdminHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))

	items, total, err := h.svc.AdminList(store.NewsQuery{
		Keyword: q.Get("q"),
		Status:  q.Get("status"),
		Sort:    q.Get("sort"),
		Page:    page,
	})
	if err != nil {
		h.logger.Error("admin news list failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if items == nil {
		items = []models.News{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

// Uploads handles POST /api/admin/uploads?kind=image|file (multipart field
// "files"). Used by the service-detail editor to attach assets outside the
// news flow.
func (h *AdminHandler) Uploads(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind != "image" && kind != "file" {
		writeJSON(w, http.StatusBadRequest, errorBody("kind must be image or file"))
		return
	}
	folder := assets.FolderServiceFiles
	if kind == "image" {
		folder = assets.FolderServiceImages
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	headers := fileHeaders(r.MultipartForm, "file", "files")
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'files' field in multipart form"))
		return
	}

	var stored []uploadedFile
	for _, fh := range headers {
		up, err := readUpload(fh)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		// Skip non-images instead of failing the batch; nothing gets stored
		// for a skipped file, so an error never leaves orphans behind.
		if kind == "image" && !assets.IsImage(up.ContentType) {
			h.logger.Warn("skipping non-image upload",
				slog.String("filename", fh.Filename), slog.String("content_type", up.ContentType))
			continue
		}
		url, err := h.uploads.Put(r.Context(), folder, up)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		name := fh.Filename
		if name == "" {
			name = "文件"
		}
		stored = append(stored, uploadedFile{Name: name, URL: url})
	}
	if len(stored) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("no valid files in upload"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": stored})
}

// Assets handles GET /api/admin/assets: the watched local upload library.
func (h *AdminHandler) Assets(w http.ResponseWriter, _ *http.Request) {
	list := h.library.List()
	if list == nil {
		list = []assets.Info{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": list})
}

// writeUploadError maps service and storage errors onto HTTP statuses.
func (h *AdminHandler) writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody(err.Error()))
	case errors.Is(err, apperr.ErrInvalid):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("news not found"))
	case errors.Is(err, apperr.ErrStorage):
		// Actionable for the operator, so the message passes through.
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
	default:
		h.logger.Error("admin request failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// fileHeaders collects the multipart file headers for the given field names,
// skipping empty filename slots from unused form inputs.
func fileHeaders(form *multipart.Form, fields ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	var out []*multipart.FileHeader
	for _, field := range fields {
		for _, fh := range form.File[field] {
			if fh != nil && fh.Filename != "" {
				out = append(out, fh)
			}
		}
	}
	return out
}

// readUpload loads one multipart file into memory.
func readUpload(fh *multipart.FileHeader) (assets.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return assets.Upload{}, invalidf("unreadable upload %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return assets.Upload{}, invalidf("unreadable upload %s", fh.Filename)
	}
	return assets.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperr.ErrInvalid}, args...)...)
}
