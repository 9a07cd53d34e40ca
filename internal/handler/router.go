package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-core/internal/handler/api"
	"pos-core/internal/handler/middleware"
	"pos-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, cartHandler, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListProducts},
			})
		}

		pos := apiGroup.Group("/pos")
		pos.Use(authMiddleware.RequireAuth())
		{
			carts := pos.Group("/carts")
			{
				addRoutes(carts, []route{
					{Method: http.MethodGet, Path: "", Handler: cartHandler.GetSession},
					{Method: http.MethodPost, Path: "", Handler: cartHandler.CreateCart},
					{Method: http.MethodPost, Path: "/:id/activate", Handler: cartHandler.SwitchActiveCart},
					{Method: http.MethodPost, Path: "/:id/delete-request", Handler: cartHandler.RequestCartDeletion},
					{Method: http.MethodDelete, Path: "/:id", Handler: cartHandler.ConfirmCartDeletion},
				})
			}

			// Active-cart mutations; the session resolves which cart they hit
			activeCart := pos.Group("/cart")
			{
				addRoutes(activeCart, []route{
					{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
					{Method: http.MethodDelete, Path: "/items", Handler: cartHandler.ClearItems},
					{Method: http.MethodPatch, Path: "/items/:itemId", Handler: cartHandler.UpdateQuantity},
					{Method: http.MethodDelete, Path: "/items/:itemId", Handler: cartHandler.RemoveItem},
					{Method: http.MethodPost, Path: "/voucher", Handler: cartHandler.ApplyVoucher},
					{Method: http.MethodDelete, Path: "/voucher", Handler: cartHandler.RemoveVoucher},
				})
			}

			checkout := pos.Group("/checkout")
			{
				addRoutes(checkout, []route{
					{Method: http.MethodPost, Path: "/begin", Handler: checkoutHandler.Begin},
					{Method: http.MethodPost, Path: "/confirm-transfer", Handler: checkoutHandler.ConfirmTransfer},
					{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.Cancel},
					{Method: http.MethodPost, Path: "/submit", Handler: checkoutHandler.Submit},
				})
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
