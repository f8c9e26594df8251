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
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Create)
	s.router.GET("/orders/:id", authMiddleware, s.handler.Get)
	s.router.GET("/orders", authMiddleware, s.handler.List)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the order id", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(orderID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user-token")

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(orderID, body.OrderID)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: coupon rejection message is returned verbatim", func() {
		for _, message := range []string{
			coupon.MsgNotFound,
			coupon.MsgExpired,
			coupon.MsgUsageLimitReached,
			"Minimum order value is 150",
		} {
			s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
				Return(uuid.Nil, &commands.CouponRejectedError{Message: message})

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, message)
		}
	})

	s.Run("error: 400 on domain validation failure", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order data")
	})

	s.Run("error: 400 on binding failures", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("items", nil),
			testutil.Field("items", []any{}),
			testutil.Field("shipping", nil),
			testutil.Field("amount", -1),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				testutil.DtoMap(s.T(), reqBody, mutate), "user-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errors.New("tx failed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/orders/" + id.String()

	s.Run("success: returns the order view", func() {
		view := builder.NewOrderBuilder().BuildViewQuery()
		view.ID = id
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "user-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when order does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "user-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "user-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID")
	})
}

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("success: returns the order views", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "user-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
