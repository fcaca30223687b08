package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"spendlens/internal/dto"
	"spendlens/internal/errors"
	"spendlens/internal/services"
)

// TransactionsHandler handles upload analysis HTTP requests
type TransactionsHandler struct {
	analysisService services.AnalysisServiceInterface
}

// NewTransactionsHandler creates a new transactions handler
func NewTransactionsHandler(analysisService services.AnalysisServiceInterface) *TransactionsHandler {
	return &TransactionsHandler{analysisService: analysisService}
}

// Upload accepts one or more CSV exports as multipart form files under
// the "files" field, runs the full analysis pipeline and returns the
// aggregate snapshot plus insights. An optional "monthKey" form value
// restricts the analysis to one YYYY-MM month.
func (h *TransactionsHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return SendError(c, errors.InputNoFiles, errors.WithDetails("expected multipart form upload"))
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return SendError(c, errors.InputNoFiles)
	}

	uploads := make([]services.Upload, 0, len(fileHeaders))
	opened := make([]multipart.File, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			return SendError(c, errors.InputUnreadableFile, errors.WithDetails(header.Filename))
		}
		opened = append(opened, file)
		uploads = append(uploads, services.Upload{
			Filename: header.Filename,
			Reader:   file,
		})
	}

	req := dto.UploadRequest{MonthKey: c.FormValue("monthKey")}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.InputInvalidMonth, errors.WithDetails(req.MonthKey))
	}

	response, err := h.analysisService.Analyze(c.Request().Context(), uploads, req.MonthKey)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// RegenerateInsights reruns narrative generation over a previously
// computed aggregate summary without re-uploading or re-categorizing.
func (h *TransactionsHandler) RegenerateInsights(c echo.Context) error {
	var req dto.RegenerateInsightsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("invalid request body"))
	}

	insights, err := h.analysisService.RegenerateInsights(c.Request().Context(), req.Summary)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RegenerateInsightsResponse{
		OK:       true,
		Insights: insights,
	})
}
