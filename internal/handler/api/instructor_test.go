//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lessonhub/internal/domain/user"
	"lessonhub/internal/handler/api"
	resdto "lessonhub/internal/handler/dto/response"
	"lessonhub/internal/usecase/commands"
	"lessonhub/internal/usecase/queries"
	"lessonhub/tests/common/builder"
	"lessonhub/tests/common/httptest"
	apimock "lessonhub/tests/mock/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InstructorHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *apimock.MockInstructorService
	mockSchedules *apimock.MockScheduleQueryService
	mockDirectory *apimock.MockInstructorQueryService
	handler       *api.InstructorHandler
	actor         *user.Participant
}

func (s *InstructorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = apimock.NewMockInstructorService(s.mockCtrl)
	s.mockSchedules = apimock.NewMockScheduleQueryService(s.mockCtrl)
	s.mockDirectory = apimock.NewMockInstructorQueryService(s.mockCtrl)
	s.handler = api.NewInstructorHandler(s.mockCommands, s.mockSchedules, s.mockDirectory)
	s.actor = builder.NewInstructorBuilder().Build()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.GET("/instructors", authMiddleware, s.handler.List)
	s.router.GET("/instructors/:id/slots", authMiddleware, s.handler.Slots)
	s.router.GET("/instructors/:id/schedule", authMiddleware, s.handler.Schedule)
	s.router.POST("/instructors/:id/approve", authMiddleware, s.handler.Approve)
}

func (s *InstructorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInstructorHandlerSuite(t *testing.T) {
	suite.Run(t, new(InstructorHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *InstructorHandlerTestSuite) TestList() {
	s.Run("success: returns the directory", func() {
		views := []*queries.InstructorView{
			{ID: uuid.New(), Email: "one@example.com", CreatedAt: time.Now()},
			{ID: uuid.New(), Email: "two@example.com", CreatedAt: time.Now()},
		}
		s.mockDirectory.EXPECT().ApprovedInstructors(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/instructors", nil, "bearer-token")

		var resp []*resdto.InstructorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}

// ================================================================================
// TestSlots
// ================================================================================

func (s *InstructorHandlerTestSuite) TestSlots() {
	instructorID := uuid.New()
	url := "/instructors/" + instructorID.String() + "/slots?date=2026-09-14"

	s.Run("success: returns the free slots", func() {
		views := []queries.SlotView{
			{StartTime: time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC), EndTime: time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)},
		}
		s.mockSchedules.EXPECT().
			AvailableSlots(gomock.Any(), instructorID, time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("missing date: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/instructors/"+instructorID.String()+"/slots", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter date is required")
	})

	s.Run("unknown instructor: returns 404", func() {
		s.mockSchedules.EXPECT().
			AvailableSlots(gomock.Any(), instructorID, gomock.Any()).
			Return(nil, queries.ErrInstructorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Instructor not found")
	})
}

// ================================================================================
// TestSchedule
// ================================================================================

func (s *InstructorHandlerTestSuite) TestSchedule() {
	instructorID := uuid.New()
	url := "/instructors/" + instructorID.String() + "/schedule?from=2026-09-14&to=2026-09-21"

	s.Run("success: returns the schedule", func() {
		views := []*queries.LessonView{builder.NewLessonBuilder().BuildView()}
		s.mockSchedules.EXPECT().
			InstructorSchedule(gomock.Any(), s.actor, instructorID,
				time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.September, 21, 0, 0, 0, 0, time.UTC),
				gomock.Nil()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp []*resdto.LessonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("invalid status filter: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&status=postponed", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("access denied: returns 403", func() {
		s.mockSchedules.EXPECT().
			InstructorSchedule(gomock.Any(), s.actor, instructorID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrScheduleAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed to view this schedule")
	})
}

// ================================================================================
// TestApprove
// ================================================================================

func (s *InstructorHandlerTestSuite) TestApprove() {
	instructorID := uuid.New()
	url := "/instructors/" + instructorID.String() + "/approve"

	s.Run("success: defaults to approving", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), instructorID, true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("explicit un-approval is forwarded", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), instructorID, false).
			Return(nil).Times(1)

		body := map[string]any{"approved": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown instructor: returns 404", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), instructorID, true).
			Return(commands.ErrInstructorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Instructor not found")
	})
}
