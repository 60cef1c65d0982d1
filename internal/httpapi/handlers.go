package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

type createLessonRequest struct {
	Topic string `json:"topic" binding:"required"`
	Tone  string `json:"personalityTone"`
}

type createdLessonResponse struct {
	SessionID    string       `json:"sessionId"`
	Stage        lesson.Stage `json:"stage"`
	CurrentStage int          `json:"currentStage"`
	TotalStages  int          `json:"totalStages"`
	Tone         lesson.Tone  `json:"personalityTone"`
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) createLesson(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	sess, err := s.svc.Create(c.Request.Context(), lesson.ParseTone(req.Tone), req.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create lesson", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, createdLessonResponse{
		SessionID:    sess.ID,
		Stage:        sess.Stages[0],
		CurrentStage: 1,
		TotalStages:  sess.TotalStages(),
		Tone:         sess.Tone,
	})
}

func (s *Server) getLesson(c *gin.Context) {
	sess, err := s.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) submitProgress(c *gin.Context) {
	var req service.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	out, err := s.svc.SubmitProgress(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.renderError(c, err)
		return
	}

	if out.Completed {
		c.JSON(http.StatusOK, gin.H{"isComplete": true, "stats": out.Summary})
		return
	}
	c.JSON(http.StatusOK, out.Session)
}

func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson session not found"})
	case errors.Is(err, engine.ErrInvalidSession):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid session state"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
