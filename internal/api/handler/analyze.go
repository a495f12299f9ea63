package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/BenedictusDevin/ai-copilot/internal/api/middleware"
	"github.com/BenedictusDevin/ai-copilot/internal/api/response"
	"github.com/BenedictusDevin/ai-copilot/internal/domain"
	"github.com/BenedictusDevin/ai-copilot/internal/extract"
	"github.com/BenedictusDevin/ai-copilot/internal/llm"
	"github.com/BenedictusDevin/ai-copilot/internal/service"
	"github.com/rs/zerolog/log"
)

// AnalyzeHandler handles document upload and one-shot analysis
type AnalyzeHandler struct {
	extractor *extract.Extractor
	analysis  *service.AnalysisService
	catalog   domain.ModelCatalog
	maxBytes  int64
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(extractor *extract.Extractor, analysis *service.AnalysisService, catalog domain.ModelCatalog, maxBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		extractor: extractor,
		analysis:  analysis,
		catalog:   catalog,
		maxBytes:  maxBytes,
	}
}

var mimeByExt = map[string]string{
	".pdf": extract.MimePDF,
	".txt": extract.MimeText,
}

// Analyze extracts text from an uploaded .pdf or .txt file and asks the
// completion API to summarize it. Nothing is written to the transcript store.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetState(r.Context())
	if !ok {
		response.Unauthorized(w, "login required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		response.BadRequest(w, "invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	mimeType, ok := mimeByExt[strings.ToLower(filepath.Ext(header.Filename))]
	if !ok {
		response.BadRequest(w, "invalid file type. Allowed: .pdf, .txt")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "failed to read uploaded file")
		return
	}

	text, err := h.extractor.Extract(mimeType, data)
	if err != nil {
		var exErr *extract.ExtractionError
		if errors.As(err, &exErr) {
			log.Warn().Err(err).Str("file", header.Filename).Msg("Extraction failed")
			response.BadRequest(w, "could not read the uploaded document")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	modelID, ok := h.catalog.Resolve(state.ModelLabel)
	if !ok {
		response.BadRequest(w, "unknown model: "+state.ModelLabel)
		return
	}

	result, err := h.analysis.Analyze(r.Context(), text, modelID, state.Credentials.APIKey)
	if err != nil {
		if errors.Is(err, service.ErrNothingToAnalyze) {
			response.BadRequest(w, "no readable text in the uploaded document")
			return
		}
		var cErr *llm.CompletionError
		if errors.As(err, &cErr) {
			response.BadGateway(w, cErr.Error())
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, map[string]any{
		"original_name": header.Filename,
		"size":          header.Size,
		"document":      text,
		"analysis":      result,
	})
}
