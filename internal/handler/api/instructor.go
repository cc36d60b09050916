package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	reqdto "lessonhub/internal/handler/dto/request"
	resdto "lessonhub/internal/handler/dto/response"
	"lessonhub/internal/handler/httperr"
	"lessonhub/internal/handler/middleware"
	"lessonhub/internal/usecase/commands"
	"lessonhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// defaultScheduleWindow is used when the schedule query names no range.
const defaultScheduleWindow = 7 * 24 * time.Hour

type InstructorService interface {
	SetApproval(ctx context.Context, instructorID uuid.UUID, approved bool) error
}

type ScheduleQueryService interface {
	AvailableSlots(ctx context.Context, instructorID uuid.UUID, date time.Time) ([]queries.SlotView, error)
	InstructorSchedule(ctx context.Context, actor *user.Participant, instructorID uuid.UUID, from, to time.Time, status *lesson.Status) ([]*queries.LessonView, error)
}

type InstructorQueryService interface {
	ApprovedInstructors(ctx context.Context) ([]*queries.InstructorView, error)
}

type InstructorHandler struct {
	instructors InstructorService
	schedules   ScheduleQueryService
	directory   InstructorQueryService
}

func NewInstructorHandler(instructors InstructorService, schedules ScheduleQueryService, directory InstructorQueryService) *InstructorHandler {
	return &InstructorHandler{
		instructors: instructors,
		schedules:   schedules,
		directory:   directory,
	}
}

func (h *InstructorHandler) List(c *gin.Context) {
	views, err := h.directory.ApprovedInstructors(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromInstructorViews(views))
}

func (h *InstructorHandler) Slots(c *gin.Context) {
	instructorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instructor ID format",
		})
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter date is required",
		})
		return
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.schedules.AvailableSlots(c.Request.Context(), instructorID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInstructorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Instructor not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

func (h *InstructorHandler) Schedule(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	instructorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instructor ID format",
		})
		return
	}

	from, to, err := parseScheduleRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range, expected YYYY-MM-DD",
		})
		return
	}

	var status *lesson.Status
	if statusStr := c.Query("status"); statusStr != "" {
		parsed, statusErr := lesson.NewStatus(statusStr)
		if statusErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return
		}
		status = &parsed
	}

	views, err := h.schedules.InstructorSchedule(c.Request.Context(), actor, instructorID, from, to, status)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrScheduleAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this schedule",
			})
		case errors.Is(err, queries.ErrInstructorRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "An instructor must be specified",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessonViews(views))
}

func (h *InstructorHandler) Approve(c *gin.Context) {
	instructorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instructor ID format",
		})
		return
	}

	var req reqdto.ApproveInstructorRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.instructors.SetApproval(c.Request.Context(), instructorID, req.IsApproved()); err != nil {
		switch {
		case errors.Is(err, commands.ErrInstructorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Instructor not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Instructor approval updated"})
}

func parseScheduleRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	to := from.Add(defaultScheduleWindow)
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}
