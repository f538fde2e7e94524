package router

import (
	_ "github.com/propledger/backend/docs"
	"github.com/propledger/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupDocs serves the generated OpenAPI document and its UI under /swagger
func (r *Router) SetupDocs(cfg middleware.SwaggerConfig) {
	r.engine.GET("/swagger/*any", middleware.SwaggerProtection(cfg), ginSwagger.WrapHandler(swaggerFiles.Handler))
}
