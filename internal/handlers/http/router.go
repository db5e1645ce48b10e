package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/adminpro-backend/internal/handlers/middleware"
	"github.com/rafabene/adminpro-backend/internal/handlers/ws"
)

// Handlers agrupa todos os handlers registrados no router
type Handlers struct {
	Health            *HealthHandler
	Auth              *AuthHandler
	User              *UserHandler
	Worker            *WorkerHandler
	Rol               *RolHandler
	Module            *ModuleHandler
	Form              *FormHandler
	Permission        *PermissionHandler
	Login             *LoginHandler
	WorkerLogin       *WorkerLoginHandler
	RolUser           *RolUserHandler
	FormModule        *FormModuleHandler
	RolFormPermission *RolFormPermissionHandler
	Menu              *MenuHandler
	ActivityLog       *ActivityLogHandler
	ActivityFeed      *ws.Hub
}

// Middlewares agrupa os middlewares aplicados pelo router
type Middlewares struct {
	I18n *middleware.I18nMiddleware
	Auth *middleware.AuthMiddleware
}

// NewRouter monta o gin.Engine com middlewares e todas as rotas.
// Rotas públicas: health, swagger e autenticação; o restante exige
// token Bearer.
func NewRouter(baseURL, allowedOrigins string, h Handlers, m Middlewares) *gin.Engine {
	router := gin.Default()

	// Base URL para construir URIs RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", baseURL)
		c.Next()
	})

	router.Use(middleware.RequestID())
	router.Use(m.I18n.DetectLanguage())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", h.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/worker-login", h.Auth.WorkerLogin)
	}

	protected := v1.Group("")
	protected.Use(m.Auth.RequireAuth())
	{
		users := protected.Group("/users")
		{
			users.POST("", h.User.CreateUser)
			users.GET("", h.User.ListUsers)
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", h.User.DeleteUser)
			users.DELETE("/:id/permanent", h.User.PermanentDeleteUser)
			users.GET("/:id/rols", h.RolUser.GetRolsByUser)
		}

		workers := protected.Group("/workers")
		{
			workers.POST("", h.Worker.CreateWorker)
			workers.GET("", h.Worker.ListWorkers)
			workers.GET("/:id", h.Worker.GetWorker)
			workers.PUT("/:id", h.Worker.UpdateWorker)
			workers.DELETE("/:id", h.Worker.DeleteWorker)
			workers.DELETE("/:id/permanent", h.Worker.PermanentDeleteWorker)
		}

		rols := protected.Group("/rols")
		{
			rols.POST("", h.Rol.CreateRol)
			rols.GET("", h.Rol.ListRols)
			rols.GET("/:id", h.Rol.GetRol)
			rols.PUT("/:id", h.Rol.UpdateRol)
			rols.DELETE("/:id", h.Rol.DeleteRol)
			rols.DELETE("/:id/permanent", h.Rol.PermanentDeleteRol)
			rols.GET("/:id/grants", h.RolFormPermission.GetGrantsByRol)
			rols.GET("/:id/menu", h.Menu.GetMenuByRol)
		}

		modules := protected.Group("/modules")
		{
			modules.POST("", h.Module.CreateModule)
			modules.GET("", h.Module.ListModules)
			modules.GET("/:id", h.Module.GetModule)
			modules.PUT("/:id", h.Module.UpdateModule)
			modules.DELETE("/:id", h.Module.DeleteModule)
			modules.DELETE("/:id/permanent", h.Module.PermanentDeleteModule)
		}

		forms := protected.Group("/forms")
		{
			forms.POST("", h.Form.CreateForm)
			forms.GET("", h.Form.ListForms)
			forms.GET("/:id", h.Form.GetForm)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.DELETE("/:id", h.Form.DeleteForm)
			forms.DELETE("/:id/permanent", h.Form.PermanentDeleteForm)
		}

		permissions := protected.Group("/permissions")
		{
			permissions.POST("", h.Permission.CreatePermission)
			permissions.GET("", h.Permission.ListPermissions)
			permissions.GET("/:id", h.Permission.GetPermission)
			permissions.PUT("/:id", h.Permission.UpdatePermission)
			permissions.DELETE("/:id", h.Permission.DeletePermission)
			permissions.DELETE("/:id/permanent", h.Permission.PermanentDeletePermission)
		}

		logins := protected.Group("/logins")
		{
			logins.POST("", h.Login.CreateLogin)
			logins.GET("", h.Login.ListLogins)
			logins.GET("/:id", h.Login.GetLogin)
			logins.PUT("/:id", h.Login.UpdateLogin)
			logins.DELETE("/:id", h.Login.DeleteLogin)
			logins.DELETE("/:id/permanent", h.Login.PermanentDeleteLogin)
		}

		workerLogins := protected.Group("/worker-logins")
		{
			workerLogins.POST("", h.WorkerLogin.CreateWorkerLogin)
			workerLogins.GET("", h.WorkerLogin.ListWorkerLogins)
			workerLogins.GET("/:id", h.WorkerLogin.GetWorkerLogin)
			workerLogins.PUT("/:id", h.WorkerLogin.UpdateWorkerLogin)
			workerLogins.DELETE("/:id", h.WorkerLogin.DeleteWorkerLogin)
			workerLogins.DELETE("/:id/permanent", h.WorkerLogin.PermanentDeleteWorkerLogin)
		}

		rolUsers := protected.Group("/rol-users")
		{
			rolUsers.POST("", h.RolUser.CreateRolUser)
			rolUsers.GET("", h.RolUser.ListRolUsers)
			rolUsers.GET("/:id", h.RolUser.GetRolUser)
			rolUsers.DELETE("/:id", h.RolUser.DeleteRolUser)
			rolUsers.DELETE("/:id/permanent", h.RolUser.PermanentDeleteRolUser)
		}

		formModules := protected.Group("/form-modules")
		{
			formModules.POST("", h.FormModule.CreateFormModule)
			formModules.GET("", h.FormModule.ListFormModules)
			formModules.GET("/lookup", h.FormModule.LookupFormModule)
			formModules.GET("/:id", h.FormModule.GetFormModule)
			formModules.DELETE("/:id", h.FormModule.DeleteFormModule)
			formModules.DELETE("/:id/permanent", h.FormModule.PermanentDeleteFormModule)
		}

		grants := protected.Group("/rol-form-permissions")
		{
			grants.POST("", h.RolFormPermission.CreateRolFormPermission)
			grants.GET("", h.RolFormPermission.ListRolFormPermissions)
			grants.GET("/:id", h.RolFormPermission.GetRolFormPermission)
			grants.DELETE("/:id", h.RolFormPermission.DeleteRolFormPermission)
			grants.DELETE("/:id/permanent", h.RolFormPermission.PermanentDeleteRolFormPermission)
		}

		activity := protected.Group("/activity")
		{
			activity.GET("", h.ActivityLog.ListRecent)
			activity.GET("/range", h.ActivityLog.ListByDateRange)
			activity.GET("/users/:id", h.ActivityLog.ListByUser)
			activity.GET("/entities/:type", h.ActivityLog.ListByEntityType)
			activity.GET("/:id", h.ActivityLog.GetActivityLog)
		}

		if h.ActivityFeed != nil {
			protected.GET("/ws/activity", h.ActivityFeed.ServeActivityFeed)
		}
	}

	return router
}
