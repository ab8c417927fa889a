package router

import (
	"time"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/config"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/handler"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/middleware"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/service"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	pedidoRepo := repository.NewPedidoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	comboRepo := repository.NewComboRepository(db)
	ofertaRepo := repository.NewOfertaRepository(db)
	localRepo := repository.NewLocalRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	verificadorSvc := service.NewVerificadorService(localRepo, usuarioRepo, productoRepo, comboRepo, empleadoRepo)

	// The notifier publishes PedidoCreado onto the Redis bus; the worker pool
	// consumes it on the other side.
	notifier := worker.NewNotifier(rdb, cfg.EventBusName)

	pedidoSvc := service.NewPedidoService(pedidoRepo, verificadorSvc, notifier)
	productoSvc := service.NewProductoService(productoRepo)
	comboSvc := service.NewComboService(comboRepo)
	ofertaSvc := service.NewOfertaService(ofertaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	combosH := handler.NewCombosHandler(comboSvc)
	ofertasH := handler.NewOfertasHandler(ofertaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", pedidosH.Obtener)
			pedidos.PUT("", pedidosH.Actualizar)
			pedidos.DELETE("", pedidosH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Obtener)
			productos.PUT("", productosH.Actualizar)
			productos.DELETE("", productosH.Eliminar)
		}

		combos := v1.Group("/combos")
		{
			combos.POST("", combosH.Crear)
			combos.GET("", combosH.Obtener)
			combos.PUT("", combosH.Actualizar)
			combos.DELETE("", combosH.Eliminar)
		}

		ofertas := v1.Group("/ofertas")
		{
			ofertas.POST("", ofertasH.Crear)
			ofertas.GET("", ofertasH.Obtener)
			ofertas.PUT("", ofertasH.Actualizar)
			ofertas.DELETE("", ofertasH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
