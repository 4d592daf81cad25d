package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/prompt"
	"github.com/kapu/pachinko-persona-lab/internal/report"
	"github.com/kapu/pachinko-persona-lab/internal/service/guard"
	"github.com/kapu/pachinko-persona-lab/internal/session"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

// Handler serves the option catalog, the generation call and exports.
type Handler struct {
	generator session.Generator
	guard     guard.Guard
	logger    *zap.Logger
}

func NewHandler(generator session.Generator, g guard.Guard, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{generator: generator, guard: g, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/options", h.handleOptions)
	r.Post("/personas", h.handleGenerate)
	r.Post("/exports/{kind}", h.handleExport)
}

type optionsResponse struct {
	Modes      []domain.InputMode `json:"modes"`
	Dimensions []domain.Dimension `json:"dimensions"`
}

func (h *Handler) handleOptions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, optionsResponse{
		Modes:      []domain.InputMode{domain.InputModeUser, domain.InputModeProduct},
		Dimensions: domain.Catalog(),
	})
}

type generateResponse struct {
	Persona  *domain.PersonaRecord   `json:"persona"`
	Summary  string                  `json:"summary"`
	Detailed string                  `json:"detailed"`
	Metadata *domain.GenerateMetadata `json:"metadata"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	input := domain.NewPersonaInput()
	if err := decodeBody(w, r, &input); err != nil {
		respondError(w, h.logger, err)
		return
	}
	input.InputMode = domain.NormalizeInputMode(string(input.InputMode))
	if !input.InputMode.Valid() {
		respondError(w, h.logger, errors.NewValidationError("unsupported input mode", "inputMode", input.InputMode))
		return
	}

	if err := input.Validate(); err != nil {
		respondError(w, h.logger, err)
		return
	}

	key := r.Header.Get(constants.ServerConfig.SessionHeader)
	release, err := h.guard.Acquire(r.Context(), key)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	defer release()

	view := session.NewView()
	view.Input = input
	if err := view.Submit(r.Context(), h.generator); err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("Persona generated",
		zap.String("request_id", view.Meta.RequestID),
		zap.String("mode", string(input.InputMode)),
		zap.String("name", view.Result.Name),
	)

	respondJSON(w, http.StatusOK, generateResponse{
		Persona:  view.Result,
		Summary:  report.Summary(view.Result),
		Detailed: report.Detailed(view.Result),
		Metadata: view.Meta,
	})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		respondError(w, h.logger, errors.NewValidationError(err.Error(), "kind", chi.URLParam(r, "kind")))
		return
	}

	var raw any
	if err := decodeBody(w, r, &raw); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := prompt.PersonaSchema().Validate(raw); err != nil {
		respondError(w, h.logger, errors.NewValidationError(err.Error(), "persona", nil))
		return
	}
	record, err := recordFrom(raw)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	artifact, err := report.Export(record, kind)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": artifact.FileName,
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.NewValidationError("request body is empty", "body", nil)
		}
		return errors.NewValidationError(fmt.Sprintf("invalid request body: %v", err), "body", nil)
	}
	return nil
}

// recordFrom re-encodes an already validated JSON tree into the typed record.
func recordFrom(raw any) (*domain.PersonaRecord, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode persona: %w", err)
	}
	var record domain.PersonaRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode persona: %w", err)
	}
	return &record, nil
}
