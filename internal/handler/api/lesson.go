package api

import (
	"context"
	"errors"
	"net/http"

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

type BookingService interface {
	BookLesson(ctx context.Context, input commands.BookLessonInput) (uuid.UUID, error)
}

type LifecycleService interface {
	Confirm(ctx context.Context, actorID, lessonID uuid.UUID) error
	UserCancel(ctx context.Context, actorID, lessonID uuid.UUID, reason *string) error
}

type LessonQueryService interface {
	UpcomingLessons(ctx context.Context, actor *user.Participant) ([]*queries.LessonView, error)
}

type LessonHandler struct {
	booking   BookingService
	lifecycle LifecycleService
	queries   LessonQueryService
}

func NewLessonHandler(booking BookingService, lifecycle LifecycleService, lessonQueries LessonQueryService) *LessonHandler {
	return &LessonHandler{
		booking:   booking,
		lifecycle: lifecycle,
		queries:   lessonQueries,
	}
}

func (h *LessonHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req reqdto.BookLessonRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := commands.BookLessonInput{
		StudentID:    actor.ID(),
		InstructorID: req.InstructorID,
		Date:         date,
		SlotNumber:   req.SlotNumber,
		Notes:        req.Notes,
	}

	lessonID, err := h.booking.BookLesson(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOnlyStudentsCanBook):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only students can book lessons",
			})
		case errors.Is(err, commands.ErrInstructorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Instructor not found",
			})
		case errors.Is(err, commands.ErrInstructorNotApproved):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Instructor is not approved",
			})
		case errors.Is(err, commands.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot number",
			})
		case errors.Is(err, commands.ErrPastLesson):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cannot book a lesson in the past",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This time slot is already booked",
			})
		case errors.Is(err, commands.ErrBookingContention):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many simultaneous booking attempts. Please try again in a few seconds.",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookLessonResponse{ID: lessonID})
}

func (h *LessonHandler) Confirm(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID format",
		})
		return
	}

	if err := h.lifecycle.Confirm(c.Request.Context(), actor.ID(), lessonID); err != nil {
		switch {
		case errors.Is(err, commands.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lesson not found",
			})
		case errors.Is(err, commands.ErrNotLessonInstructor):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the lesson instructor can confirm",
			})
		case errors.Is(err, commands.ErrInvalidState):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Only planned lessons can be confirmed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson confirmed"})
}

func (h *LessonHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID format",
		})
		return
	}

	var req reqdto.CancelLessonRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.lifecycle.UserCancel(c.Request.Context(), actor.ID(), lessonID, req.Reason); err != nil {
		switch {
		case errors.Is(err, commands.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lesson not found",
			})
		case errors.Is(err, commands.ErrNotLessonParticipant):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only a lesson participant can cancel",
			})
		case errors.Is(err, commands.ErrPastLesson):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cannot cancel a lesson that has already started",
			})
		case errors.Is(err, commands.ErrCancellationWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Students must cancel lesson at least 12 hours in advance",
			})
		case errors.Is(err, commands.ErrInvalidState):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Lesson cannot be cancelled in its current status",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson cancelled"})
}

func (h *LessonHandler) Upcoming(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	views, err := h.queries.UpcomingLessons(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessonViews(views))
}
