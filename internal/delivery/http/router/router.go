// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cityhub/internal/delivery/http/middleware"
	"cityhub/internal/delivery/http/router/handler"
	"cityhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CommerceHandler *handler.CommerceHandler
	UserHandler     *handler.UserHandler
	StorageHandler  *handler.StorageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	commerceHandler *handler.CommerceHandler
	userHandler     *handler.UserHandler
	storageHandler  *handler.StorageHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		commerceHandler: params.CommerceHandler,
		userHandler:     params.UserHandler,
		storageHandler:  params.StorageHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware

	// Commerce routes
	commerceGroup := e.Group("/api/comercios")
	{
		// Public reads
		commerceGroup.GET("", r.commerceHandler.List)
		commerceGroup.GET("/CIF/:cif", r.commerceHandler.GetByCIF)
		commerceGroup.GET("/Actividad/:actividad", r.commerceHandler.GetByActivity)
		commerceGroup.GET("/Ciudad/:ciudad", r.commerceHandler.GetByCity)
		commerceGroup.GET("/qr/:cif", r.commerceHandler.PageQR)

		// Only an admin user may register a new commerce
		commerceGroup.POST("/register", r.commerceHandler.Register,
			auth.AuthenticateUser, auth.CheckRol(entity.RoleAdmin))
		commerceGroup.POST("/login", r.commerceHandler.Login)

		// Commerce self-service, gated on token CIF matching the path
		commerceGroup.PATCH("/:cif", r.commerceHandler.Update,
			auth.AuthenticateCommerce, auth.CheckCIF)
		commerceGroup.PATCH("/info/:cif", r.commerceHandler.PublishContent,
			auth.AuthenticateCommerce, auth.CheckCIF)
		commerceGroup.POST("/fotos/:cif", r.commerceHandler.UploadPhoto,
			auth.AuthenticateCommerce, auth.CheckCIF)
		commerceGroup.DELETE("/:cif", r.commerceHandler.Delete,
			auth.AuthenticateCommerce, auth.CheckCIF)

		// Reviews come from authenticated users
		commerceGroup.PATCH("/review/:cif", r.commerceHandler.AddReview,
			auth.AuthenticateUser, auth.CheckRol(entity.RoleUser))

		// Physical removal is reserved for admins
		commerceGroup.DELETE("/admin/:cif", r.commerceHandler.AdminDelete,
			auth.AuthenticateUser, auth.CheckRol(entity.RoleAdmin))
	}

	// User routes
	userGroup := e.Group("/api/user")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)

		// Commerce-facing audience routes
		userGroup.GET("/filtered", r.userHandler.Filtered, auth.AuthenticateCommerce)
		userGroup.POST("/ofertas", r.userHandler.DispatchOffers, auth.AuthenticateCommerce)

		userGroup.GET("/:correo", r.userHandler.Get)

		// Users may only touch their own record
		userGroup.PATCH("/:correo", r.userHandler.Update,
			auth.AuthenticateUser, auth.CheckCorreo)
		userGroup.DELETE("/:correo", r.userHandler.Delete,
			auth.AuthenticateUser, auth.CheckCorreo)
	}

	// Generic media storage routes
	storageGroup := e.Group("/api/storage")
	{
		storageGroup.GET("", r.storageHandler.List)
		storageGroup.GET("/:id", r.storageHandler.Get)
		storageGroup.POST("", r.storageHandler.Upload)
		storageGroup.DELETE("/:id", r.storageHandler.Delete)
	}
}
