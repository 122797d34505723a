package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maxmeneghini/D20CharSheet/internal/services"
)

//go:embed static
var staticFS embed.FS

// NewRouter builds the gin engine with all sheet routes registered.
func NewRouter(provider *services.Provider, logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())

	handler := NewSheetHandler(&HandlerConfig{
		SheetService: provider.SheetService,
		Logger:       logger,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/", func(c *gin.Context) {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/modifier", handler.PreviewModifier)

		sheets := v1.Group("/sheets")
		{
			sheets.POST("", handler.CreateSheet)
			sheets.GET("", handler.ListSheets)
			sheets.GET("/:id", handler.GetSheet)
			sheets.PUT("/:id", handler.UpdateSheet)
			sheets.DELETE("/:id", handler.DeleteSheet)

			sheets.GET("/:id/derived", handler.GetDerived)
			sheets.POST("/:id/heal", handler.Heal)
			sheets.POST("/:id/damage", handler.Damage)
			sheets.POST("/:id/tags/:list", handler.AddTag)
			sheets.DELETE("/:id/tags/:list", handler.RemoveTag)
			sheets.PUT("/:id/skills", handler.UpdateSkills)
			sheets.GET("/:id/export", handler.ExportSheet)
		}
	}

	return engine
}
