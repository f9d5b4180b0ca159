package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
	"github.com/fust64/fust_beheer_app/internal/handlers"
	"github.com/fust64/fust_beheer_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartnerService ---
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) ResolvePartner(ctx context.Context, code string, kind domain.PartnerKind) (*domain.Partner, error) {
	args := m.Called(ctx, code, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) GetPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PartnerSvcFacade = (*MockPartnerService)(nil)

// --- Mock MutationService ---
type MockMutationService struct {
	mock.Mock
}

func (m *MockMutationService) CreateMutation(ctx context.Context, req dto.CreateMutationRequest) (*domain.Mutation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mutation), args.Error(1)
}
func (m *MockMutationService) DeleteMutation(ctx context.Context, mutationID int64) error {
	args := m.Called(ctx, mutationID)
	return args.Error(0)
}
func (m *MockMutationService) ListMutations(ctx context.Context) ([]domain.MutationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MutationDetail), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.MutationSvcFacade = (*MockMutationService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetPartnerLedger(ctx context.Context, partnerID int64) (*domain.PartnerLedger, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartnerLedger), args.Error(1)
}
func (m *MockBalanceService) GetOverview(ctx context.Context) ([]domain.OverviewRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverviewRow), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportCSV(ctx context.Context, r io.Reader) (*dto.CSVImportSummary, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CSVImportSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CSVImportSvcFacade = (*MockImportService)(nil)

// --- Test Suite ---
type MutationHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockPartnerService  *MockPartnerService
	mockMutationService *MockMutationService
	mockBalanceService  *MockBalanceService
	mockImportService   *MockImportService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *MutationHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fust-test",
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MutationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPartnerService = new(MockPartnerService)
	suite.mockMutationService = new(MockMutationService)
	suite.mockBalanceService = new(MockBalanceService)
	suite.mockImportService = new(MockImportService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fust-test",
		IsProduction:      true, // keep swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		Partner:  suite.mockPartnerService,
		Mutation: suite.mockMutationService,
		Balance:  suite.mockBalanceService,
		Importer: suite.mockImportService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *MutationHandlerTestSuite) doRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MutationHandlerTestSuite) TestCreateMutation_Success() {
	reqBody, _ := json.Marshal(dto.CreateMutationRequest{
		PartnerCode:  "1001",
		Kind:         "customer",
		EventDate:    "2024-03-15",
		LoadedCage:   5,
		UnloadedCage: 2,
	})
	created := &domain.Mutation{
		ID:           11,
		PartnerID:    3,
		EventDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		LoadedCage:   5,
		UnloadedCage: 2,
	}

	suite.mockMutationService.On("CreateMutation", mock.Anything, mock.MatchedBy(func(r dto.CreateMutationRequest) bool {
		return r.PartnerCode == "1001" && r.EventDate == "2024-03-15"
	})).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/mutations", reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.MutationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(11), resp.ID)
	suite.Equal("2024-03-15", resp.EventDate)
	suite.Equal(5, resp.LoadedTotal)
	suite.Equal(2, resp.UnloadedTotal)
	suite.mockMutationService.AssertExpectations(suite.T())
}

func (suite *MutationHandlerTestSuite) TestCreateMutation_FutureDateRejected() {
	future := time.Now().AddDate(0, 0, 7).Format(domain.EventDateFormat)
	reqBody, _ := json.Marshal(dto.CreateMutationRequest{
		PartnerCode: "1001",
		EventDate:   future,
		LoadedCage:  1,
	})

	w := suite.doRequest(http.MethodPost, "/api/v1/mutations", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "future")
	suite.mockMutationService.AssertNotCalled(suite.T(), "CreateMutation")
}

func (suite *MutationHandlerTestSuite) TestCreateMutation_Unauthorized() {
	reqBody, _ := json.Marshal(dto.CreateMutationRequest{PartnerCode: "1001", EventDate: "2024-03-15"})

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/mutations", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMutationService.AssertNotCalled(suite.T(), "CreateMutation")
}

func (suite *MutationHandlerTestSuite) TestListMutations_Success() {
	details := []domain.MutationDetail{
		{
			Mutation:    domain.Mutation{ID: 2, PartnerID: 1, EventDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), LoadedCage: 4},
			PartnerCode: "1001",
			PartnerName: "Bakkerij Jansen",
			PartnerKind: domain.KindCustomer,
		},
	}

	suite.mockMutationService.On("ListMutations", mock.Anything).Return(details, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/mutations", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.MutationDetailResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("1001", resp[0].PartnerCode)
	suite.Equal("customer", resp[0].PartnerKind)
}

func (suite *MutationHandlerTestSuite) TestDeleteMutation_NotFound() {
	suite.mockMutationService.On("DeleteMutation", mock.Anything, int64(99)).Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/mutations/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockMutationService.AssertExpectations(suite.T())
}

func (suite *MutationHandlerTestSuite) TestDeleteMutation_Success() {
	suite.mockMutationService.On("DeleteMutation", mock.Anything, int64(11)).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/mutations/11", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockMutationService.AssertExpectations(suite.T())
}

func (suite *MutationHandlerTestSuite) TestGetOverview_FilterApplied() {
	rows := []domain.OverviewRow{
		{PartnerID: 1, Code: "1001", Kind: domain.KindCustomer, CageBalance: 5},
		{PartnerID: 2, Code: "2001", Kind: domain.KindSupplier, CageBalance: -2},
	}

	suite.mockBalanceService.On("GetOverview", mock.Anything).Return(rows, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/overview?kind=customer", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.OverviewRowResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("1001", resp[0].Code)
	suite.Equal("owed_to_business", resp[0].CageMeaning)
}

// --- Run Suite ---
func TestMutationHandler(t *testing.T) {
	suite.Run(t, new(MutationHandlerTestSuite))
}
