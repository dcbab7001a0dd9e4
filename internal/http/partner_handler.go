package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/flavour"
	"love-by-flavour/internal/repository"
)

// PartnerHandler mantiene dependencias para el CRUD de ex parejas.
type PartnerHandler struct {
	logger   *zap.Logger
	partners repository.PartnerRepository
}

// NewPartnerHandler crea una instancia de PartnerHandler con dependencias necesarias.
func NewPartnerHandler(logger *zap.Logger, partners repository.PartnerRepository) *PartnerHandler {
	return &PartnerHandler{
		logger:   logger,
		partners: partners,
	}
}

type partnerRequest struct {
	Nickname string               `json:"nickname" binding:"required"`
	Flavour  flavour.Flavour      `json:"flavour" binding:"required"`
	Traits   *flavour.TraitVector `json:"traits"`
	Notes    string               `json:"notes"`
}

// List maneja GET /api/partners.
func (h *PartnerHandler) List(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	partners, err := h.partners.ListByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list partners failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list partners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// Create maneja POST /api/partners.
func (h *PartnerHandler) Create(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create partner request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !flavour.IsValid(req.Flavour) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flavour"})
		return
	}

	now := time.Now().UTC()
	partner := domain.Partner{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		Nickname:  req.Nickname,
		Flavour:   req.Flavour,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Traits != nil {
		partner.Traits = *req.Traits
	}

	if err := h.partners.Create(c.Request.Context(), partner); err != nil {
		h.logger.Error("create partner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create partner"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"partner": partner})
}

// Get maneja GET /api/partners/:id.
func (h *PartnerHandler) Get(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	partner, err := h.fetchOwned(c, claims.UserID)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

// Update maneja PUT /api/partners/:id.
func (h *PartnerHandler) Update(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	partner, err := h.fetchOwned(c, claims.UserID)
	if err != nil {
		return
	}

	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update partner request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !flavour.IsValid(req.Flavour) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flavour"})
		return
	}

	partner.Nickname = req.Nickname
	partner.Flavour = req.Flavour
	partner.Notes = req.Notes
	if req.Traits != nil {
		partner.Traits = *req.Traits
	}
	partner.UpdatedAt = time.Now().UTC()

	if err := h.partners.Update(c.Request.Context(), partner); err != nil {
		h.logger.Error("update partner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update partner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

// Delete maneja DELETE /api/partners/:id.
func (h *PartnerHandler) Delete(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if _, err := h.fetchOwned(c, claims.UserID); err != nil {
		return
	}

	if err := h.partners.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		h.logger.Error("delete partner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete partner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// fetchOwned carga el partner del path y verifica que pertenezca al usuario.
// Escribe la respuesta de error por su cuenta; el caller corta si err != nil.
func (h *PartnerHandler) fetchOwned(c *gin.Context, userID string) (domain.Partner, error) {
	partner, err := h.partners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return domain.Partner{}, err
		}
		h.logger.Error("get partner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch partner"})
		return domain.Partner{}, err
	}
	if partner.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		return domain.Partner{}, pgx.ErrNoRows
	}
	return partner, nil
}
