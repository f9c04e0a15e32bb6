package router

import (
	"time"

	"nomina/internal/config"
	"nomina/internal/handler"
	"nomina/internal/middleware"
	"nomina/internal/model"
	"nomina/internal/repository"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	sessions := repository.NewSessionStore(rdb)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.Session(sessions))

	// ── Repositories ─────────────────────────────────────────────────────────
	personalRepo := repository.NewPersonalRepository(db)
	obraRepo := repository.NewObraRepository(db)
	asignacionRepo := repository.NewAsignacionRepository(db)
	presentismoRepo := repository.NewPresentismoRepository(db)
	ingresoEgresoRepo := repository.NewIngresoEgresoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	personalSvc := service.NewPersonalService(personalRepo)
	obraSvc := service.NewObraService(obraRepo)
	asignacionSvc := service.NewAsignacionService(asignacionRepo)
	presentismoSvc := service.NewPresentismoService(presentismoRepo)
	ingresoEgresoSvc := service.NewIngresoEgresoService(ingresoEgresoRepo)
	authSvc := service.NewAuthService(usuarioRepo, sessions, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	dashboardSvc := service.NewDashboardService(personalRepo, obraRepo, asignacionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	personalH := handler.NewPersonalHandler(personalSvc)
	obrasH := handler.NewObrasHandler(obraSvc)
	asignacionesH := handler.NewAsignacionesHandler(asignacionSvc)
	presentismoH := handler.NewPresentismoHandler(presentismoSvc)
	ingresosEgresosH := handler.NewIngresosEgresosHandler(ingresoEgresoSvc)
	authH := handler.NewAuthHandler(authSvc, cfg)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	adminOnly := middleware.RequireRol(model.RolAdmin)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth
	r.GET("/login", authH.Sesion)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.GET("/logout", authH.Logout)

	api := r.Group("/api")
	{
		// Reads are never gated; mutations on personal/obras/asignaciones
		// require the admin role.
		personal := api.Group("/personal")
		{
			personal.GET("", personalH.Listar)
			personal.GET("/:id", personalH.Obtener)
			personal.POST("", adminOnly, personalH.Crear)
			personal.PUT("/:id", adminOnly, personalH.Actualizar)
			personal.DELETE("/:id", adminOnly, personalH.Eliminar)
		}

		obras := api.Group("/obras")
		{
			obras.GET("", obrasH.Listar)
			obras.GET("/:id", obrasH.Obtener)
			obras.POST("", adminOnly, obrasH.Crear)
			obras.PUT("/:id", adminOnly, obrasH.Actualizar)
			obras.DELETE("/:id", adminOnly, obrasH.Eliminar)
		}

		asignaciones := api.Group("/asignaciones")
		{
			asignaciones.GET("", asignacionesH.Listar)
			asignaciones.GET("/:id", asignacionesH.Obtener)
			asignaciones.POST("", adminOnly, asignacionesH.Crear)
			asignaciones.PUT("/:id", adminOnly, asignacionesH.Actualizar)
			asignaciones.DELETE("/:id", adminOnly, asignacionesH.Eliminar)
		}

		// Presentismo and ingresos-egresos mutations are intentionally left
		// ungated: field users record attendance and clock events without an
		// account. Asymmetric with the groups above — do not "fix" without
		// deciding the access policy first.
		presentismo := api.Group("/presentismo")
		{
			presentismo.GET("", presentismoH.Listar)
			presentismo.GET("/:id", presentismoH.Obtener)
			presentismo.POST("", presentismoH.Crear)
			presentismo.PUT("/:id", presentismoH.Actualizar)
			presentismo.DELETE("/:id", presentismoH.Eliminar)
		}

		ingresos := api.Group("/ingresos-egresos")
		{
			ingresos.GET("", ingresosEgresosH.Listar)
			ingresos.GET("/:id", ingresosEgresosH.Obtener)
			ingresos.POST("", ingresosEgresosH.Crear)
			ingresos.PUT("/:id", ingresosEgresosH.Actualizar)
			ingresos.DELETE("/:id", ingresosEgresosH.Eliminar)
		}

		api.GET("/dashboard", middleware.RequireAuth(), dashboardH.Totales)
	}

	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/usuarios", usuariosH.Listar)
		admin.POST("/usuarios", usuariosH.Accion)
		admin.POST("/crear-usuario", usuariosH.Crear)
		admin.POST("/usuarios/:id/cambiar-password", usuariosH.CambiarPassword)
	}

	return r
}
