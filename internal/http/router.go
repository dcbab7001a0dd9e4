package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"love-by-flavour/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	quizH *QuizHandler,
	flavourH *FlavourHandler,
	partnerH *PartnerHandler,
	analysisH *AnalysisHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", userH.Register)
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.Refresh)
	auth.POST("/logout", userH.Logout)

	// El clasificador corre sin cuenta: el quiz es la puerta de entrada.
	api.GET("/quiz/questions", quizH.Questions)
	api.POST("/quiz/classify", quizH.Classify)

	api.GET("/flavours", flavourH.List)
	api.GET("/flavours/:flavour", flavourH.Get)
	api.GET("/compatibility", flavourH.Compatibility)

	private := api.Group("", JWTAuthMiddleware(jwtSvc))
	private.GET("/me", userH.Me)
	private.POST("/quiz/submit", quizH.Submit)
	private.GET("/partners", partnerH.List)
	private.POST("/partners", partnerH.Create)
	private.GET("/partners/:id", partnerH.Get)
	private.PUT("/partners/:id", partnerH.Update)
	private.DELETE("/partners/:id", partnerH.Delete)
	private.POST("/partners/:id/insight", analysisH.PartnerInsight)
	private.POST("/analysis/patterns", analysisH.Patterns)
	private.POST("/analysis/compatibility", analysisH.Compatibility)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
