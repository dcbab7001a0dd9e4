package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"love-by-flavour/internal/flavour"
	"love-by-flavour/internal/service"
)

// QuizHandler mantiene dependencias para endpoints del quiz.
type QuizHandler struct {
	logger   *zap.Logger
	quizServ *service.QuizService
}

// NewQuizHandler crea una instancia de QuizHandler con dependencias necesarias.
func NewQuizHandler(logger *zap.Logger, quizServ *service.QuizService) *QuizHandler {
	return &QuizHandler{
		logger:   logger,
		quizServ: quizServ,
	}
}

// Questions maneja GET /api/quiz/questions.
func (h *QuizHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": flavour.Questions()})
}

// Classify maneja POST /api/quiz/classify: corre el clasificador puro,
// sin cuenta y sin persistir nada.
func (h *QuizHandler) Classify(c *gin.Context) {
	var req struct {
		Answers []int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid classify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.quizServ.Classify(req.Answers)
	if err != nil {
		if errors.Is(err, flavour.ErrInvalidAnswers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid answers"})
			return
		}
		h.logger.Error("classify failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not classify"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flavour": result.Flavour,
		"traits":  result.Traits,
	})
}

// Submit maneja POST /api/quiz/submit: clasifica y persiste para el usuario.
func (h *QuizHandler) Submit(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Answers []int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.quizServ.SubmitForUser(c.Request.Context(), claims.UserID, req.Answers)
	if err != nil {
		if errors.Is(err, flavour.ErrInvalidAnswers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid answers"})
			return
		}
		h.logger.Error("submit quiz failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save quiz result"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}
