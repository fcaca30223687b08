package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/parser"
)

var (
	ErrNoFiles      = errors.New("no files were uploaded")
	ErrNoUsableRows = errors.New("no usable transactions found in the uploaded files")
)

// Upload is one uploaded export ready to parse.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// AnalysisService runs the full pipeline for an upload: parse and
// merge the exports, filter to the requested month, split out non-spend
// flows, normalize to line items, categorize through the model and
// rebuild all figures deterministically before asking for insights.
type AnalysisService struct {
	parser      *parser.CSVParser
	classifier  FlowClassifierInterface
	normalizer  *Normalizer
	categorizer CategorizationServiceInterface
	aggregator  AggregationServiceInterface
	insights    InsightsServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func NewAnalysisService(
	csvParser *parser.CSVParser,
	classifier FlowClassifierInterface,
	normalizer *Normalizer,
	categorizer CategorizationServiceInterface,
	aggregator AggregationServiceInterface,
	insights InsightsServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnalysisServiceInterface {
	return &AnalysisService{
		parser:      csvParser,
		classifier:  classifier,
		normalizer:  normalizer,
		categorizer: categorizer,
		aggregator:  aggregator,
		insights:    insights,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, uploads []Upload, monthKey string) (*dto.AnalyzeResponse, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("analysis.duration", time.Since(start))
	}()

	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}

	allRows := make([]models.RawRow, 0)
	for _, upload := range uploads {
		rows, err := s.parser.Parse(upload.Reader)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", upload.Filename, err)
		}
		allRows = append(allRows, rows...)
	}

	rows := parser.Merge(allRows)
	rows, err := parser.FilterToMonth(rows, monthKey)
	if err != nil {
		return nil, err
	}

	flows, spendRows := s.splitFlows(rows)
	items := s.normalizer.Normalize(spendRows)
	if len(items) == 0 {
		return nil, ErrNoUsableRows
	}

	s.logger.Info("analyzing upload",
		"files", len(uploads),
		"rows", len(rows),
		"line_items", len(items),
		"month", monthKey)
	s.metrics.RecordGauge("analysis.line_items", float64(len(items)), nil)

	assignment, err := s.categorizer.Categorize(ctx, items)
	if err != nil {
		return nil, err
	}

	snapshot := s.aggregator.Aggregate(items, assignment, flows)
	summary := s.aggregator.BuildInsightsSummary(items, snapshot)

	narrative, err := s.insights.Generate(ctx, summary)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeResponse{
		OK:               true,
		Filename:         uploadLabel(uploads),
		TransactionCount: len(items),
		AI: &dto.AnalysisBlock{
			AggregateSnapshot: *snapshot,
			Insights:          narrative,
		},
	}, nil
}

func (s *AnalysisService) RegenerateInsights(ctx context.Context, summary models.InsightsSummary) (*models.Insights, error) {
	return s.insights.Generate(ctx, summary)
}

// splitFlows removes payroll, transfers, investments and bill payments
// from the categorization set, accumulating their absolute totals.
// Zero-amount rows are dropped here so they never reach a flow rule.
func (s *AnalysisService) splitFlows(rows []models.RawRow) (models.FlowTotals, []models.RawRow) {
	flows := models.FlowTotals{
		Payroll:      decimal.Zero,
		BillPayments: decimal.Zero,
		Transfers:    decimal.Zero,
		Investments:  decimal.Zero,
	}
	spend := make([]models.RawRow, 0, len(rows))

	for _, row := range rows {
		if row.Amount.IsZero() {
			continue
		}
		switch s.classifier.Classify(row.Description, row.Amount) {
		case models.FlowPayroll:
			flows.Payroll = flows.Payroll.Add(row.Amount.Abs())
		case models.FlowTransfer:
			flows.Transfers = flows.Transfers.Add(row.Amount.Abs())
		case models.FlowInvestment:
			flows.Investments = flows.Investments.Add(row.Amount.Abs())
		case models.FlowBillPayment:
			flows.BillPayments = flows.BillPayments.Add(row.Amount.Abs())
		default:
			spend = append(spend, row)
		}
	}

	return flows, spend
}

func uploadLabel(uploads []Upload) string {
	if len(uploads) == 0 {
		return ""
	}
	if len(uploads) > 3 {
		return fmt.Sprintf("%d files", len(uploads))
	}
	names := make([]string, 0, len(uploads))
	for _, u := range uploads {
		names = append(names, u.Filename)
	}
	return strings.Join(names, ", ")
}
