//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"quotation-portal/internal/domain/user"
	"quotation-portal/internal/handler/api"
	resdto "quotation-portal/internal/handler/dto/response"
	"quotation-portal/internal/pkg/errs"
	"quotation-portal/internal/usecase/commands"
	"quotation-portal/tests/common/builder"
	"quotation-portal/tests/common/httptest"
	"quotation-portal/tests/common/testutil"
	commandsmock "quotation-portal/tests/mock/commands"
	queriesmock "quotation-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuotationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuotationActionCommands
	mockQueries  *queriesmock.MockQuotationQueries
	mockAccess   *commandsmock.MockAccessResolver
	handler      *api.QuotationHandler
	userID       uuid.UUID
}

func (s *QuotationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuotationActionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuotationQueries(s.mockCtrl)
	s.mockAccess = commandsmock.NewMockAccessResolver(s.mockCtrl)
	s.handler = api.NewQuotationHandler(s.mockCommands, s.mockQueries, s.mockAccess)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	// Setup routes
	s.router.GET("/quotations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/quotations/:id/actions/request", authMiddleware, s.handler.RequestAction)
	s.router.POST("/quotations/:id/actions/confirm", authMiddleware, s.handler.ConfirmAction)
}

func (s *QuotationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuotationHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuotationHandlerTestSuite))
}

// ================================================================================
// TestRequestAction
// ================================================================================

func (s *QuotationHandlerTestSuite) TestRequestAction() {
	quotationID := uuid.New()
	url := fmt.Sprintf("/quotations/%s/actions/request", quotationID)
	reqBody := builder.NewQuotationBuilder().BuildRequestActionDTO()

	s.Run("success: returns 200 with confirmation message", func() {
		s.mockCommands.EXPECT().RequestAction(gomock.Any(), s.userID, quotationID, gomock.Any()).
			Return(&commands.RequestActionResult{Message: "OTP sent to your registered email"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.RequestActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("OTP sent to your registered email", resp.Message)
	})

	s.Run("validation: rejects unknown action values", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("action", "approve"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("validation: rejects missing action", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("action", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("validation: rejects malformed quotation id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/not-a-uuid/actions/request", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quotation id")
	})

	s.Run("auth: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error mapping: client not found", func() {
		s.mockCommands.EXPECT().RequestAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrClientNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})

	s.Run("error mapping: quotation not found", func() {
		s.mockCommands.EXPECT().RequestAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrQuotationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quotation not found")
	})

	s.Run("error mapping: quotation not sent", func() {
		s.mockCommands.EXPECT().RequestAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrQuotationNotSent).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not awaiting action")
	})
}

// ================================================================================
// TestConfirmAction
// ================================================================================

func (s *QuotationHandlerTestSuite) TestConfirmAction() {
	quotationID := uuid.New()
	url := fmt.Sprintf("/quotations/%s/actions/confirm", quotationID)
	q := builder.NewQuotationBuilder().WithID(quotationID).AsAccepted()
	reqBody := q.BuildConfirmActionDTO("123456")

	s.Run("success: returns 200 with updated quotation", func() {
		s.mockCommands.EXPECT().ConfirmAction(gomock.Any(), s.userID, quotationID, "123456").
			Return(&commands.ConfirmActionResult{
				Message:   "Quotation accepted successfully",
				Quotation: q.BuildViewQuery(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.ConfirmActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Quotation accepted successfully", resp.Message)
		s.Require().NotNil(resp.Quotation)
		s.Equal(quotationID.String(), resp.Quotation.ID)
		s.Equal("ACCEPTED", resp.Quotation.Status)
	})

	s.Run("success: message-only when the view is unavailable", func() {
		s.mockCommands.EXPECT().ConfirmAction(gomock.Any(), s.userID, quotationID, "123456").
			Return(&commands.ConfirmActionResult{Message: "Quotation accepted successfully"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.ConfirmActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Quotation accepted successfully", resp.Message)
		s.Nil(resp.Quotation)
	})

	s.Run("validation: rejects missing code", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("code", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error mapping: invalid OTP", func() {
		s.mockCommands.EXPECT().ConfirmAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidOTP).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired OTP")
	})

	s.Run("error mapping: quotation not sent", func() {
		s.mockCommands.EXPECT().ConfirmAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrQuotationNotSent).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not awaiting action")
	})

	s.Run("auth: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *QuotationHandlerTestSuite) TestGet() {
	q := builder.NewQuotationBuilder()
	url := fmt.Sprintf("/quotations/%s", q.ID)
	resolved := builder.NewClientUserBuilder().WithID(s.userID).BuildResolved

	s.Run("success: returns quotation in scope", func() {
		client := builder.NewClientUserBuilder().WithID(s.userID).WithOrganizationID(q.OrganizationID).BuildResolved()
		s.mockAccess.EXPECT().Resolve(gomock.Any(), s.userID).Return(client, nil).Times(1)
		s.mockQueries.EXPECT().GetForClient(gomock.Any(), client.Access, q.ID).
			Return(q.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(q.ID.String(), resp.ID)
		s.Equal(q.Title, resp.Title)
		s.Equal(q.AmountCents, resp.AmountCents)
	})

	s.Run("error mapping: out of scope is indistinguishable from absent", func() {
		client := resolved()
		s.mockAccess.EXPECT().Resolve(gomock.Any(), s.userID).Return(client, nil).Times(1)
		s.mockQueries.EXPECT().GetForClient(gomock.Any(), client.Access, q.ID).
			Return(nil, errs.ErrQuotationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quotation not found")
	})

	s.Run("error mapping: non-client caller", func() {
		s.mockAccess.EXPECT().Resolve(gomock.Any(), s.userID).Return(nil, errs.ErrClientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})

	s.Run("validation: rejects malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quotation id")
	})
}
