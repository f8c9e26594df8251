//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/user"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockChecker  *commandsmock.MockCouponChecker
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockChecker = commandsmock.NewMockCouponChecker(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockChecker, s.mockQueries)

	// Stand-in for RequireAuth + RequireRoleAtLeast(admin)
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/coupons/check", s.handler.Check)
	s.router.POST("/coupons", adminMiddleware, s.handler.Create)
	s.router.GET("/coupons", adminMiddleware, s.handler.List)
	s.router.PATCH("/coupons/:id", adminMiddleware, s.handler.Update)
	s.router.DELETE("/coupons/:id", adminMiddleware, s.handler.Delete)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *CouponHandlerTestSuite) TestCheck() {
	url := "/coupons/check"
	reqBody := map[string]any{"code": "SAVE10", "subtotal": 100}

	s.Run("success: valid coupon", func() {
		s.mockChecker.EXPECT().Check(gomock.Any(), "SAVE10", gomock.Any()).
			Return(coupon.CheckResult{Valid: true, DiscountAmount: decimal.NewFromInt(10)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CheckCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.True(body.DiscountAmount.Equal(decimal.NewFromInt(10)))
		s.Empty(body.Message)
	})

	s.Run("success: invalid coupon still returns 200 with the verdict", func() {
		s.mockChecker.EXPECT().Check(gomock.Any(), "SAVE10", gomock.Any()).
			Return(coupon.CheckResult{Valid: false, DiscountAmount: decimal.Zero, Message: coupon.MsgExpired}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CheckCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal(coupon.MsgExpired, body.Message)
	})

	s.Run("error: 400 on missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("code", nil)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 on checker failure", func() {
		s.mockChecker.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(coupon.CheckResult{}, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupons"
	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID, body.ID)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDuplicateCouponCode)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("code", nil),
			testutil.Field("code", "ab"),
			testutil.Field("discountAmount", nil),
			testutil.Field("expiresAt", nil),
			testutil.Field("maxUses", 0),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				testutil.DtoMap(s.T(), reqBody, mutate), "admin-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *CouponHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/coupons/" + id.String()
	reqBody := map[string]any{"maxUses": 5}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 when coupon does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/coupons/not-a-uuid", reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon ID")
	})
}

func (s *CouponHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/coupons/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 when coupon does not exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CouponHandlerTestSuite) TestList() {
	s.Run("success: returns the coupon views", func() {
		views := []*queries.CouponView{
			builder.NewCouponBuilder().BuildViewQuery(),
			builder.NewCouponBuilder().WithCode("WELCOME5").BuildViewQuery(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "admin-token")

		var body []*queries.CouponView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("WELCOME5", body[1].Code)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}
