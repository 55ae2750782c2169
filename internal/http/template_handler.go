package http

import (
	"encoding/json"
	"net/http"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/http/middleware"
	"github.com/Notifuse/designer/pkg/logger"
)

// maxRequestBody bounds a template save; designs embed their HTML export
const maxRequestBody = 5 << 20

// TemplateHandler serves the template store routes consumed by the designer
// page: templates, core emails and the editor config section.
type TemplateHandler struct {
	repo         domain.TemplateRepository
	pluginID     string
	editorConfig map[string]interface{}
	auth         *middleware.JWTAuth
	logger       logger.Logger
}

func NewTemplateHandler(repo domain.TemplateRepository, pluginID string, editorConfig map[string]interface{}, auth *middleware.JWTAuth, logger logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		repo:         repo,
		pluginID:     pluginID,
		editorConfig: editorConfig,
		auth:         auth,
		logger:       logger,
	}
}

func (h *TemplateHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()
	prefix := "/" + h.pluginID

	mux.Handle("GET "+prefix+"/templates/{id}", requireAuth(http.HandlerFunc(h.handleGetTemplate)))
	mux.Handle("POST "+prefix+"/templates/{id}", requireAuth(http.HandlerFunc(h.handleSaveTemplate)))
	mux.Handle("GET "+prefix+"/core/{type}", requireAuth(http.HandlerFunc(h.handleGetCoreTemplate)))
	mux.Handle("POST "+prefix+"/core/{type}", requireAuth(http.HandlerFunc(h.handleSaveCoreTemplate)))
	mux.Handle("GET "+prefix+"/config", requireAuth(http.HandlerFunc(h.handleGetConfig)))
}

func (h *TemplateHandler) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseTemplateID(r.PathValue("id"))
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	numeric, ok := id.Int64()
	if !ok {
		WriteJSONError(w, "A new template has nothing to fetch", http.StatusBadRequest)
		return
	}

	tpl, err := h.repo.GetTemplate(r.Context(), numeric)
	if err != nil {
		writeServiceError(w, h.logger, err, "get template")
		return
	}

	writeJSON(w, http.StatusOK, tpl)
}

// handleSaveTemplate creates the template when the id is "new" and updates
// it otherwise
func (h *TemplateHandler) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseTemplateID(r.PathValue("id"))
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req domain.SaveTemplateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "save template")
		return
	}

	var tpl *domain.Template
	if numeric, ok := id.Int64(); ok {
		tpl, err = h.repo.UpdateTemplate(r.Context(), numeric, &req)
	} else {
		tpl, err = h.repo.CreateTemplate(r.Context(), &req)
	}
	if err != nil {
		writeServiceError(w, h.logger, err, "save template")
		return
	}

	status := http.StatusOK
	if id.IsNew() {
		status = http.StatusCreated
	}
	writeJSON(w, status, tpl)
}

func (h *TemplateHandler) handleGetCoreTemplate(w http.ResponseWriter, r *http.Request) {
	emailType := domain.CoreEmailType(r.PathValue("type"))
	if err := emailType.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	core, err := h.repo.GetCoreTemplate(r.Context(), emailType)
	if err != nil {
		writeServiceError(w, h.logger, err, "get core email")
		return
	}

	writeJSON(w, http.StatusOK, core)
}

func (h *TemplateHandler) handleSaveCoreTemplate(w http.ResponseWriter, r *http.Request) {
	emailType := domain.CoreEmailType(r.PathValue("type"))
	if err := emailType.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req domain.SaveCoreTemplateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "save core email")
		return
	}

	core, err := h.repo.SaveCoreTemplate(r.Context(), emailType, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "save core email")
		return
	}

	writeJSON(w, http.StatusOK, core)
}

// handleGetConfig answers with the plugin config; the designer only reads
// config.editor
func (h *TemplateHandler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	editor := h.editorConfig
	if editor == nil {
		editor = map[string]interface{}{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"config": map[string]interface{}{
			"editor": editor,
		},
	})
}
