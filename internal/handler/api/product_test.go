//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront/internal/domain/user"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
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

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/products", s.handler.List)
	s.router.GET("/products/:id", s.handler.Get)
	s.router.POST("/products", adminMiddleware, s.handler.Create)
	s.router.PATCH("/products/:id", adminMiddleware, s.handler.Update)
	s.router.DELETE("/products/:id", adminMiddleware, s.handler.Delete)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ProductHandlerTestSuite) TestList() {
	s.Run("success: catalog is public", func() {
		views := []*queries.ProductView{builder.NewProductBuilder().BuildViewQuery()}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var body []*queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}

func (s *ProductHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/products/" + id.String()

	s.Run("success: returns the product view", func() {
		view := builder.NewProductBuilder().BuildViewQuery()
		view.ID = id
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: 404 when product does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID")
	})
}

// ================================================================================
// TestCreate / TestUpdate / TestDelete
// ================================================================================

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/products"
	reqBody := builder.NewProductBuilder().BuildCreateRequestDTO()

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

	s.Run("error: 400 on binding failures", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("name", nil),
			testutil.Field("price", -1),
			testutil.Field("rating", 5.5),
			testutil.Field("discount", 101),
			testutil.Field("stock", -1),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				testutil.DtoMap(s.T(), reqBody, mutate), "admin-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})
}

func (s *ProductHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/products/" + id.String()
	reqBody := map[string]any{"stock": 42}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 when product does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/products/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 when product does not exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
