package services_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spendlens/internal/models"
	"spendlens/internal/services"
)

type NormalizerTestSuite struct {
	suite.Suite
	normalizer *services.Normalizer
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func (s *NormalizerTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.normalizer = services.NewNormalizer(2000, logger)
}

func rawRow(day int, description string, amount string) models.RawRow {
	return models.RawRow{
		Date:        time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
}

func (s *NormalizerTestSuite) TestNormalize_NegativeAmount_BecomesExpense() {
	items := s.normalizer.Normalize([]models.RawRow{rawRow(5, "NETFLIX.COM", "-15.00")})

	s.Require().Len(items, 1)
	s.Equal(models.ItemKindExpense, items[0].Kind)
	s.True(items[0].Amount.Equal(decimal.RequireFromString("15.00")))
}

func (s *NormalizerTestSuite) TestNormalize_PositiveAmount_BecomesRefund() {
	items := s.normalizer.Normalize([]models.RawRow{rawRow(6, "NETFLIX.COM", "5.00")})

	s.Require().Len(items, 1)
	s.Equal(models.ItemKindRefund, items[0].Kind)
	s.True(items[0].Amount.Equal(decimal.RequireFromString("5.00")))
}

func (s *NormalizerTestSuite) TestNormalize_ZeroAmount_IsDropped() {
	items := s.normalizer.Normalize([]models.RawRow{
		rawRow(5, "FEE REVERSAL", "0"),
		rawRow(6, "COFFEE", "-4.50"),
	})

	s.Require().Len(items, 1)
	s.Equal("COFFEE", items[0].Merchant)
}

func (s *NormalizerTestSuite) TestNormalize_IDsAreDenseAndOrdered() {
	items := s.normalizer.Normalize([]models.RawRow{
		rawRow(1, "A", "-1"),
		rawRow(2, "SKIP", "0"),
		rawRow(3, "B", "-2"),
		rawRow(4, "C", "3"),
	})

	s.Require().Len(items, 3)
	for i, item := range items {
		s.Equal(i+1, item.ID)
	}
}

func (s *NormalizerTestSuite) TestNormalize_CapTruncatesInput() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	normalizer := services.NewNormalizer(3, logger)

	rows := make([]models.RawRow, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, rawRow(1+i%27, "MERCHANT", "-10.00"))
	}

	items := normalizer.Normalize(rows)
	s.Len(items, 3)
}

func (s *NormalizerTestSuite) TestNormalize_ArbitraryDescriptions_AlwaysProduceValidItems() {
	gofakeit.Seed(42)

	rows := make([]models.RawRow, 0, 50)
	for i := 0; i < 50; i++ {
		amount := decimal.NewFromFloat(gofakeit.Price(0.01, 500)).Neg()
		if i%7 == 0 {
			amount = amount.Neg()
		}
		rows = append(rows, models.RawRow{
			Date:        time.Date(2025, 1, 1+i%28, 0, 0, 0, 0, time.UTC),
			Description: gofakeit.Company(),
			Amount:      amount,
		})
	}

	items := s.normalizer.Normalize(rows)

	s.Require().Len(items, 50)
	for _, item := range items {
		s.True(models.IsValidItemKind(item.Kind))
		s.False(item.Amount.IsNegative())
		s.NotEmpty(item.Merchant)
	}
}

func (s *NormalizerTestSuite) TestNormalize_MerchantIsNormalized() {
	items := s.normalizer.Normalize([]models.RawRow{
		rawRow(7, "  SHELL   OIL 57442911 DALLAS TX ", "-40.00"),
	})

	s.Require().Len(items, 1)
	s.Equal("SHELL OIL", items[0].Merchant)
}
