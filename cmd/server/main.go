package main

import (
	"log"
	"net/http"

	"catalva-be/internal/catalog"
	"catalva-be/internal/category"
	"catalva-be/internal/config"
	"catalva-be/internal/db"
	"catalva-be/internal/handler"
	"catalva-be/internal/logger"
	"catalva-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	store := catalog.NewStore(database)
	catalogSvc := catalog.NewService(store)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	products := handler.NewProductHandler(catalogSvc)
	router.GET("/products", products.ListProducts)
	router.GET("/products/top-sellers", products.TopSellers)
	router.GET("/products/:id", products.GetProduct)
	router.POST("/products", products.CreateProduct)
	router.DELETE("/products/:id", products.DeleteProduct)
	router.POST("/products/:id/images", products.AddImage)
	router.DELETE("/products/:id/images/:imageId", products.RemoveImage)

	categories := handler.NewCategoryHandler(categorySvc)
	router.GET("/categories", categories.ListCategories)
	router.POST("/categories", categories.CreateCategory)

	router.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Outermost first: request id, then logging, then rate limiting.
	srv := logger.RequestIDMiddleware(
		middleware.LoggingMiddleware(
			middleware.RateLimitMiddleware(router),
		),
	)

	log.Printf("catalog server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv))
}
