// Package parser reads delimited bank exports into raw transaction
// rows. Column detection is heuristic because every bank names its
// headers differently; everything downstream works on canonical rows.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendlens/internal/models"
)

var (
	ErrMissingDateColumn   = errors.New("CSV is missing a recognizable date column")
	ErrMissingAmountColumn = errors.New("CSV is missing a recognizable amount column (or debit/credit columns)")
	ErrInvalidMonthKey     = errors.New("month key must look like YYYY-MM")
	ErrInvalidDate         = errors.New("unrecognized date format")
	ErrInvalidAmount       = errors.New("unparseable amount")
)

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006-1-2",
	"2006/01/02",
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

var dateColumnNames = []string{
	"date", "posted date", "posting date", "transaction date", "trans date",
}

var descriptionColumnNames = []string{
	"description", "transaction description", "original description",
	"merchant", "merchant name",
	"payee", "payee name",
	"vendor", "vendor name",
	"narrative", "memo", "details",
}

var amountColumnNames = []string{"amount", "amt", "value"}

var debitColumnNames = []string{"debit", "withdrawal", "outflow"}

var creditColumnNames = []string{"credit", "deposit", "inflow"}

// CSVParser reads one bank export stream into raw rows.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads a single CSV stream. The first record is treated as the
// header row. Rows with a blank date or an unparseable amount cell that
// is entirely blank are skipped; genuinely malformed values fail.
func (p *CSVParser) Parse(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	dateIdx := findColumn(header, dateColumnNames)
	descIdx := findColumn(header, descriptionColumnNames)
	amountIdx := findColumn(header, amountColumnNames)
	debitIdx := findColumn(header, debitColumnNames)
	creditIdx := findColumn(header, creditColumnNames)

	if dateIdx < 0 {
		return nil, ErrMissingDateColumn
	}
	if amountIdx < 0 && debitIdx < 0 && creditIdx < 0 {
		return nil, ErrMissingAmountColumn
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		dateRaw := fieldAt(record, dateIdx)
		if dateRaw == "" {
			continue
		}

		date, err := parseDate(dateRaw)
		if err != nil {
			return nil, err
		}

		description := fieldAt(record, descIdx)

		var amount *decimal.Decimal
		if amountIdx >= 0 {
			amount, err = parseMoney(fieldAt(record, amountIdx))
			if err != nil {
				return nil, err
			}
		} else {
			debit, err := parseMoneyOrZero(fieldAt(record, debitIdx))
			if err != nil {
				return nil, err
			}
			credit, err := parseMoneyOrZero(fieldAt(record, creditIdx))
			if err != nil {
				return nil, err
			}
			net := credit.Sub(debit)
			amount = &net
		}

		if amount == nil {
			continue
		}

		rows = append(rows, models.RawRow{
			Date:        date,
			Description: description,
			Amount:      *amount,
		})
	}

	return rows, nil
}

// Merge combines rows from multiple files: sorted by (date,
// description) and deduplicated on date|amount|normalized merchant so
// overlapping exports collapse to one row.
func Merge(rows []models.RawRow) []models.RawRow {
	sorted := make([]models.RawRow, len(rows))
	copy(sorted, rows)
	sortRows(sorted)

	seen := make(map[string]bool, len(sorted))
	out := make([]models.RawRow, 0, len(sorted))
	for _, row := range sorted {
		key := row.Date.Format("2006-01-02") + "|" + row.Amount.String() + "|" +
			strings.ToLower(models.NormalizeMerchant(row.Description))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}

	return out
}

// FilterToMonth keeps only the rows inside the given "YYYY-MM" month.
// An empty monthKey keeps everything.
func FilterToMonth(rows []models.RawRow, monthKey string) ([]models.RawRow, error) {
	if strings.TrimSpace(monthKey) == "" {
		return rows, nil
	}

	start, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidMonthKey, monthKey)
	}
	endExclusive := start.AddDate(0, 1, 0)

	out := make([]models.RawRow, 0, len(rows))
	for _, row := range rows {
		if !row.Date.Before(start) && row.Date.Before(endExclusive) {
			out = append(out, row)
		}
	}

	return out, nil
}

func sortRows(rows []models.RawRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].Description < rows[j].Description
	})
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// findColumn scores each header against the candidate names and
// returns the index of the best match, or -1 when nothing matches.
func findColumn(header []string, candidates []string) int {
	best := -1
	bestScore := 0

	for i, h := range header {
		hn := normalizeHeader(h)

		for _, c := range candidates {
			cn := normalizeHeader(c)

			score := 0
			if hn == cn {
				score += 100
			}
			if strings.Contains(hn, cn) {
				score += 60
			}
			if strings.Contains(cn, hn) && hn != "" {
				score += 40
			}
			if strings.ReplaceAll(hn, " ", "") == strings.ReplaceAll(cn, " ", "") {
				score += 80
			}
			if strings.HasPrefix(hn, cn) {
				score += 20
			}

			if score > bestScore {
				bestScore = score
				best = i
			}
		}
	}

	return best
}

func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func parseDate(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	// ISO timestamps: keep the date part.
	if idx := strings.Index(v, "T"); idx > 0 {
		return parseDate(v[:idx])
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// parseMoney returns nil (not an error) for blank cells. "(12.34)" is
// negative; currency symbols and thousands separators are stripped.
func parseMoney(raw string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}

	parensNegative := strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")")
	v = strings.NewReplacer("(", "", ")", "").Replace(v)
	v = nonNumeric.ReplaceAllString(v, "")

	if v == "" || v == "-" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidAmount, raw, err)
	}
	if parensNegative {
		amount = amount.Neg()
	}

	return &amount, nil
}

func parseMoneyOrZero(raw string) (decimal.Decimal, error) {
	v, err := parseMoney(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if v == nil {
		return decimal.Zero, nil
	}
	return v.Abs(), nil
}
