package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Home)

		setupAuthorRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
		setupBookRoutes(catalog, c)
		setupCopyRoutes(catalog, c)
	}

	return router
}

func setupAuthorRoutes(g *gin.RouterGroup, c *container.Container) {
	g.GET("/authors", c.AuthorHandler.List)

	author := g.Group("/author")
	{
		author.POST("/create", c.AuthorHandler.Create)
		author.GET("/:id", c.AuthorHandler.Detail)
		author.POST("/:id/update", c.AuthorHandler.Update)
		author.GET("/:id/delete", c.AuthorHandler.DeleteCheck)
		author.POST("/:id/delete", c.AuthorHandler.Delete)
	}
}

func setupGenreRoutes(g *gin.RouterGroup, c *container.Container) {
	g.GET("/genres", c.GenreHandler.List)

	genre := g.Group("/genre")
	{
		genre.POST("/create", c.GenreHandler.Create)
		genre.GET("/:id", c.GenreHandler.Detail)
		genre.POST("/:id/update", c.GenreHandler.Update)
		genre.GET("/:id/delete", c.GenreHandler.DeleteCheck)
		genre.POST("/:id/delete", c.GenreHandler.Delete)
	}
}

func setupBookRoutes(g *gin.RouterGroup, c *container.Container) {
	g.GET("/books", c.BookHandler.List)

	book := g.Group("/book")
	{
		// create must be registered before :id so the literal wins
		book.GET("/create", c.BookHandler.FormOptions)
		book.POST("/create", c.BookHandler.Create)
		book.GET("/:id", c.BookHandler.Detail)
		book.POST("/:id/update", c.BookHandler.Update)
		book.GET("/:id/delete", c.BookHandler.DeleteCheck)
		book.POST("/:id/delete", c.BookHandler.Delete)
	}
}

func setupCopyRoutes(g *gin.RouterGroup, c *container.Container) {
	g.GET("/bookinstances", c.CopyHandler.List)

	copy := g.Group("/bookinstance")
	{
		copy.GET("/create", c.CopyHandler.FormOptions)
		copy.POST("/create", c.CopyHandler.Create)
		copy.GET("/:id", c.CopyHandler.Detail)
		copy.POST("/:id/update", c.CopyHandler.Update)
		copy.POST("/:id/delete", c.CopyHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
