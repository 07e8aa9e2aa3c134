package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/agenciadigitalslz/sistema-vendas-nota3/docs"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/api/controller"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/user"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/infrastructure/database"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/service"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/pkg/auth"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router              *gin.Engine
	db                  *pgxpool.Pool
	jwtService          *auth.JWTService
	authController      *controller.AuthController
	clientController    *controller.ClientController
	productController   *controller.ProductController
	saleController      *controller.SaleController
	dashboardController *controller.DashboardController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()

	// Criar repositórios
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Criar serviços
	catalogService := service.NewCatalogService(clientRepo, productRepo, saleRepo)
	saleService := service.NewSaleService(clientRepo, productRepo, saleRepo)
	dashboardService := service.NewDashboardService(clientRepo, productRepo, saleRepo)

	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	clientController := controller.NewClientController(catalogService, log)
	productController := controller.NewProductController(catalogService, log)
	saleController := controller.NewSaleController(saleService, log)
	dashboardController := controller.NewDashboardController(dashboardService, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// CORS: a API é consumida por um front-end no navegador
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	app := &App{
		router:              router,
		db:                  db,
		jwtService:          jwtService,
		authController:      authController,
		clientController:    clientController,
		productController:   productController,
		saleController:      saleController,
		dashboardController: dashboardController,
	}

	app.setupRoutes("/api/v1")

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas públicas
	api.POST("/auth/login", a.authController.Login)

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTAuthMiddleware(a.jwtService))

	protected.GET("/auth/me", a.authController.Me)

	clientsRoutes := protected.Group("/clients")
	{
		clientsRoutes.POST("", a.clientController.Create)
		clientsRoutes.GET("", a.clientController.List)
		clientsRoutes.GET("/:id", a.clientController.Get)
		clientsRoutes.PUT("/:id", a.clientController.Update)
		clientsRoutes.DELETE("/:id", a.clientController.Delete)
	}

	productsRoutes := protected.Group("/products")
	{
		productsRoutes.POST("", a.productController.Create)
		productsRoutes.GET("", a.productController.List)
		productsRoutes.GET("/:id", a.productController.Get)
		productsRoutes.PUT("/:id", a.productController.Update)
		productsRoutes.DELETE("/:id", a.productController.Delete)
	}

	salesRoutes := protected.Group("/sales")
	{
		salesRoutes.POST("", a.saleController.Create)
		salesRoutes.GET("", a.saleController.List)
		salesRoutes.GET("/:id", a.saleController.Get)
		salesRoutes.PATCH("/:id/cancel", a.saleController.Cancel)
		salesRoutes.DELETE("/:id", a.saleController.Delete)
	}

	dashboardRoutes := protected.Group("/dashboard")
	{
		dashboardRoutes.GET("/summary", a.dashboardController.Summary)
		dashboardRoutes.GET("/revenue", a.dashboardController.Revenue)
	}

	// Gestão de usuários restrita a administradores
	usersRoutes := protected.Group("/users")
	usersRoutes.Use(auth.RequireRole(string(user.RoleAdmin)))
	{
		usersRoutes.POST("", a.authController.CreateUser)
		usersRoutes.GET("", a.authController.ListUsers)
	}
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
