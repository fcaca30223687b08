package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spendlens/internal/dto"
	"spendlens/internal/handlers"
	"spendlens/internal/models"
	"spendlens/internal/services"
	"spendlens/internal/services/service_mocks"
)

type TransactionsHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	analysisService *service_mocks.MockAnalysisServiceInterface
	handler         *handlers.TransactionsHandler
	echo            *echo.Echo
}

func TestTransactionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionsHandlerTestSuite))
}

func (s *TransactionsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.analysisService = service_mocks.NewMockAnalysisServiceInterface(s.ctrl)
	s.handler = handlers.NewTransactionsHandler(s.analysisService)
	s.echo = echo.New()
	s.echo.Validator = handlers.NewValidator()
}

func (s *TransactionsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionsHandlerTestSuite) multipartRequest(monthKey string, files map[string]string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		s.Require().NoError(err)
		_, err = part.Write([]byte(content))
		s.Require().NoError(err)
	}
	if monthKey != "" {
		s.Require().NoError(writer.WriteField("monthKey", monthKey))
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func (s *TransactionsHandlerTestSuite) TestUpload_Success() {
	response := &dto.AnalyzeResponse{
		OK:               true,
		Filename:         "january.csv",
		TransactionCount: 3,
		AI: &dto.AnalysisBlock{
			AggregateSnapshot: models.AggregateSnapshot{
				GrossSpend: decimal.RequireFromString("55.00"),
			},
			Insights: &models.Insights{TopSpendingCategory: "Transport"},
		},
	}
	s.analysisService.EXPECT().
		Analyze(gomock.Any(), gomock.Any(), "2025-01").
		Return(response, nil).
		Times(1)

	req := s.multipartRequest("2025-01", map[string]string{"january.csv": "Date,Description,Amount\n"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Upload(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var got dto.AnalyzeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.True(got.OK)
	s.Equal("january.csv", got.Filename)
	s.Equal(3, got.TransactionCount)
}

func (s *TransactionsHandlerTestSuite) TestUpload_NoFiles_Returns400() {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Upload(c)

	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var got handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("INPUT_006", got.Error.Code)
}

func (s *TransactionsHandlerTestSuite) TestUpload_InvalidMonthKey_Returns400() {
	req := s.multipartRequest("2025-13", map[string]string{"january.csv": "Date,Description,Amount\n"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Upload(c)

	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var got handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("INPUT_005", got.Error.Code)
}

func (s *TransactionsHandlerTestSuite) TestUpload_NoUsableRows_Returns400() {
	s.analysisService.EXPECT().
		Analyze(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNoUsableRows).
		Times(1)

	req := s.multipartRequest("", map[string]string{"empty.csv": "Date,Description,Amount\n"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Upload(c)

	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var got handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("INPUT_004", got.Error.Code)
}

func (s *TransactionsHandlerTestSuite) TestUpload_IncompleteAssignment_Returns422() {
	s.analysisService.EXPECT().
		Analyze(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &services.IncompleteAssignmentError{Missing: []int{7}}).
		Times(1)

	req := s.multipartRequest("", map[string]string{"a.csv": "Date,Description,Amount\n"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Upload(c)

	s.Require().NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var got handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("RECONCILE_004", got.Error.Code)
}

func (s *TransactionsHandlerTestSuite) TestUpload_CircuitOpen_Returns503() {
	s.analysisService.EXPECT().
		Analyze(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrCircuitBreakerOpen).
		Times(1)

	req := s.multipartRequest("", map[string]string{"a.csv": "Date,Description,Amount\n"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.Upload(c)

	s.Require().NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *TransactionsHandlerTestSuite) TestRegenerateInsights_Success() {
	insights := &models.Insights{TopSpendingCategory: "Dining"}
	s.analysisService.EXPECT().
		RegenerateInsights(gomock.Any(), gomock.Any()).
		Return(insights, nil).
		Times(1)

	payload := `{"summary":{"transactionCount":3,"grossSpend":"55.00"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/regenerate-insights", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.RegenerateInsights(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var got dto.RegenerateInsightsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.True(got.OK)
	s.Equal("Dining", got.Insights.TopSpendingCategory)
}

func (s *TransactionsHandlerTestSuite) TestRegenerateInsights_MalformedBody_Returns400() {
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/regenerate-insights", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.RegenerateInsights(c)

	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}
