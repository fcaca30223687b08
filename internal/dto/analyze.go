package dto

import (
	"spendlens/internal/models"
)

// AnalysisBlock is the model-assisted part of the upload response. The
// aggregate figures come from deterministic recomputation, only the
// insights text originates from the model.
type AnalysisBlock struct {
	models.AggregateSnapshot
	Insights *models.Insights `json:"insights"`
}

// UploadRequest carries the non-file form values of the upload endpoint.
// The files themselves are read straight from the multipart form.
type UploadRequest struct {
	MonthKey string `form:"monthKey" json:"monthKey" validate:"omitempty,month_key"`
}

type AnalyzeResponse struct {
	OK               bool           `json:"ok"`
	Filename         string         `json:"filename"`
	TransactionCount int            `json:"transactionCount"`
	AI               *AnalysisBlock `json:"ai"`
}

type RegenerateInsightsRequest struct {
	Summary models.InsightsSummary `json:"summary"`
}

type RegenerateInsightsResponse struct {
	OK       bool             `json:"ok"`
	Insights *models.Insights `json:"insights"`
}
