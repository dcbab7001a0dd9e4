package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"love-by-flavour/internal/flavour"
	"love-by-flavour/internal/llm"
	"love-by-flavour/internal/service"
)

// AnalysisHandler dispara los analisis narrativos del LLM (siempre via cache).
type AnalysisHandler struct {
	logger       *zap.Logger
	insights     *service.InsightService
	rateLimiter  service.AnalysisRateLimiter
	exposeErrors bool
}

// NewAnalysisHandler crea una instancia de AnalysisHandler con dependencias
// necesarias. exposeErrors muestra el mensaje interno fuera de produccion.
func NewAnalysisHandler(
	logger *zap.Logger,
	insights *service.InsightService,
	rateLimiter service.AnalysisRateLimiter,
	exposeErrors bool,
) *AnalysisHandler {
	return &AnalysisHandler{
		logger:       logger,
		insights:     insights,
		rateLimiter:  rateLimiter,
		exposeErrors: exposeErrors,
	}
}

// Patterns maneja POST /api/analysis/patterns. Es el unico endpoint con
// rate limit por IP: es el analisis mas caro y el mas facil de spamear.
func (h *AnalysisHandler) Patterns(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if h.rateLimiter != nil && !h.rateLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	result, err := h.insights.AnalyzePatterns(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no quiz result yet"})
			return
		}
		h.internalError(c, "pattern analysis failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result})
}

// Compatibility maneja POST /api/analysis/compatibility.
func (h *AnalysisHandler) Compatibility(c *gin.Context) {
	var req struct {
		A flavour.Flavour `json:"a" binding:"required"`
		B flavour.Flavour `json:"b" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compatibility request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.insights.AnalyzeCompatibility(c.Request.Context(), req.A, req.B)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFlavour) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flavour"})
			return
		}
		h.internalError(c, "compatibility analysis failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result})
}

// PartnerInsight maneja POST /api/partners/:id/insight.
func (h *AnalysisHandler) PartnerInsight(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	result, err := h.insights.PartnerInsight(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		h.internalError(c, "partner insight failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result})
}

// internalError loguea y responde 500. Fuera de produccion expone el mensaje
// interno; en produccion responde generico.
func (h *AnalysisHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		zap.Error(err),
		zap.Bool("ai_malformed", errors.Is(err, service.ErrAIResponseMalformed)),
		zap.Bool("ai_backend", errors.Is(err, llm.ErrBackend)),
	)
	if h.exposeErrors {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis unavailable"})
}
