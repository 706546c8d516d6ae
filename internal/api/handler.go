package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anlek/mathweave/internal/curriculum"
	"github.com/anlek/mathweave/internal/feedback"
	"github.com/anlek/mathweave/internal/problemgen"
	"github.com/anlek/mathweave/internal/store"
)

// ProblemGenerator produces a new problem session at a difficulty.
type ProblemGenerator interface {
	Generate(ctx context.Context, difficulty curriculum.Difficulty) (*problemgen.Problem, error)
}

// AnswerEvaluator grades a submission and streams tutor feedback
// through the emit callback.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, sessionID uuid.UUID, userAnswer float64, emit func(string) error) (*feedback.Result, error)
}

// Handler holds the HTTP handlers for the problem and submission routes.
type Handler struct {
	problems  ProblemGenerator
	evaluator AnswerEvaluator
	logger    *zap.Logger
}

// NewHandler creates a Handler. A nil logger disables logging.
func NewHandler(problems ProblemGenerator, evaluator AnswerEvaluator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{problems: problems, evaluator: evaluator, logger: logger}
}

// GenerateProblem handles POST /problems. The difficulty defaults to
// MEDIUM when the body omits it.
func (h *Handler) GenerateProblem(c *gin.Context) {
	var req struct {
		Difficulty string `json:"difficulty_level"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	difficulty := curriculum.DifficultyMedium
	if req.Difficulty != "" {
		var err error
		difficulty, err = curriculum.ParseDifficulty(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	problem, err := h.problems.Generate(c.Request.Context(), difficulty)
	if err != nil {
		h.logger.Error("problem generation failed",
			zap.String("difficulty", string(difficulty)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate problem"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":     problem.SessionID,
		"problem_text":   problem.Text,
		"correct_answer": problem.Answer,
	})
}

// SubmitAnswer handles POST /problems/:id/submissions. Feedback is
// streamed to the client as plain text fragments; the response status
// is committed by the first fragment, so anything that can fail fast
// (bad id, bad body, unknown session, provider down) fails before it.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req struct {
		Answer    *float64 `json:"answer"`
		SessionID string   `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Answer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer is required"})
		return
	}
	// The path id is authoritative; a body session_id, when present,
	// must agree with it.
	if req.SessionID != "" && req.SessionID != sessionID.String() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id does not match the request path"})
		return
	}

	streaming := false
	emit := func(fragment string) error {
		if !streaming {
			streaming = true
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Cache-Control", "no-cache")
			c.Status(http.StatusOK)
		}
		if _, werr := c.Writer.WriteString(fragment); werr != nil {
			return werr
		}
		c.Writer.Flush()
		return nil
	}

	_, err = h.evaluator.Evaluate(c.Request.Context(), sessionID, *req.Answer, emit)
	if err != nil {
		if streaming {
			// The stream already committed a 200; nothing useful can
			// be sent to the client now.
			h.logger.Error("submission finalize failed after streaming",
				zap.String("session_id", sessionID.String()),
				zap.Error(err))
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "problem session not found"})
			return
		}
		h.logger.Error("answer evaluation failed",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate answer"})
	}
}

// HealthCheck handles GET /healthcheck.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
