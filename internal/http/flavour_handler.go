package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"love-by-flavour/internal/flavour"
)

// FlavourHandler sirve el contenido editorial estatico de los sabores.
type FlavourHandler struct {
	logger *zap.Logger
}

func NewFlavourHandler(logger *zap.Logger) *FlavourHandler {
	return &FlavourHandler{logger: logger}
}

// List maneja GET /api/flavours.
func (h *FlavourHandler) List(c *gin.Context) {
	all := flavour.All()
	profiles := make([]flavour.Profile, 0, len(all))
	for _, f := range all {
		if p, ok := flavour.ProfileFor(f); ok {
			profiles = append(profiles, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"flavours": profiles})
}

// Get maneja GET /api/flavours/:flavour.
func (h *FlavourHandler) Get(c *gin.Context) {
	f := flavour.Flavour(c.Param("flavour"))
	profile, ok := flavour.ProfileFor(f)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "flavour not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flavour": profile})
}

// Compatibility maneja GET /api/compatibility?a=&b= con la matriz estatica.
func (h *FlavourHandler) Compatibility(c *gin.Context) {
	a := flavour.Flavour(c.Query("a"))
	b := flavour.Flavour(c.Query("b"))
	if !flavour.IsValid(a) || !flavour.IsValid(b) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flavour"})
		return
	}

	score, ok := flavour.Compatibility(a, b)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "pair not scored"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"a": a, "b": b, "score": score})
}
