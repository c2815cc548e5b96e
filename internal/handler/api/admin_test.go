//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dormgate/internal/domain/booking"
	"dormgate/internal/handler/api"
	resdto "dormgate/internal/handler/dto/response"
	"dormgate/internal/handler/middleware"
	"dormgate/internal/pkg/clock"
	"dormgate/internal/pkg/errs"
	"dormgate/internal/usecase/queries"
	"dormgate/tests/common/httptest"
	gatewaymock "dormgate/tests/mock/gateway"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var admin = httptest.Admin("admin-1")

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockGateway *gatewaymock.MockGateway
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewaymock.NewMockGateway(s.mockCtrl)

	registry := queries.NewRegistry(s.mockGateway, clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	handler := api.NewAdminHandler(registry)
	identity := middleware.NewIdentityMiddleware()

	group := s.router.Group("/api/admin", identity.RequireIdentity(), identity.RequireRole(middleware.RoleAdmin))
	group.GET("/reservations", handler.List)
	group.DELETE("/reservations/:id", handler.Cancel)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func adminPage(total int) *booking.ReservationPage {
	return &booking.ReservationPage{
		Content: []booking.AdminReservation{
			{ID: "rsv-1", FirstName: "Jan", LastName: "Kowalski", ResourceName: "Washer", Status: "CONFIRMED"},
		},
		TotalElements: total,
		TotalPages:    (total + 9) / 10,
		CurrentPage:   0,
		PageSize:      10,
	}
}

func (s *AdminHandlerTestSuite) TestList() {
	s.Run("success: default paging and sort", func() {
		want := booking.AdminFilter{Size: queries.DefaultPageSize, SortDirection: "DESC"}
		s.mockGateway.EXPECT().ListAdminReservations(gomock.Any(), want).Return(adminPage(14), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations", nil, admin)

		var body resdto.AdminReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("LOADED", body.Status)
		s.Equal(14, body.TotalElements)
		s.Require().Len(body.Content, 1)
		s.Equal("Kowalski", body.Content[0].LastName)
	})

	s.Run("success: filters are passed through", func() {
		want := booking.AdminFilter{
			Size: 25, SortDirection: "ASC",
			BuildingID: "bld-1", Date: "2025-06-01", Search: "kowalski",
		}
		s.mockGateway.EXPECT().ListAdminReservations(gomock.Any(), want).Return(adminPage(1), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/admin/reservations?size=25&sortDirection=ASC&buildingId=bld-1&date=2025-06-01&search=kowalski", nil, admin)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed paging", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations?page=minus-one", nil, admin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations?sortDirection=SIDEWAYS", nil, admin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 403 for a resident", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations", nil,
			httptest.Resident("user-1", "bld-1"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: failed fetch reports upstream failure", func() {
		want := booking.AdminFilter{Size: queries.DefaultPageSize, SortDirection: "DESC", Search: "broken"}
		s.mockGateway.EXPECT().ListAdminReservations(gomock.Any(), want).Return(nil, errs.ErrNetwork)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations?search=broken", nil, admin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}

func (s *AdminHandlerTestSuite) TestCancel() {
	seed := booking.AdminFilter{Size: queries.DefaultPageSize, SortDirection: "DESC"}
	s.mockGateway.EXPECT().ListAdminReservations(gomock.Any(), seed).Return(adminPage(11), nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations", nil, admin)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Run("success: cancel refreshes the current page", func() {
		s.mockGateway.EXPECT().CancelReservation(gomock.Any(), "rsv-1").Return(nil)
		s.mockGateway.EXPECT().ListAdminReservations(gomock.Any(), seed).Return(adminPage(10), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/reservations/rsv-1", nil, admin)

		var body resdto.AdminReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(10, body.TotalElements)
	})

	s.Run("error: 404 when already cancelled elsewhere", func() {
		s.mockGateway.EXPECT().CancelReservation(gomock.Any(), "rsv-gone").Return(errs.ErrReservationGone)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/reservations/rsv-gone", nil, admin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
