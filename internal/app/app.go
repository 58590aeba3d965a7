package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"bankingsystem/internal/config"
	"bankingsystem/internal/handlers"
	"bankingsystem/internal/middleware"
	"bankingsystem/internal/pdf"
	"bankingsystem/internal/repositories"
	"bankingsystem/internal/routes"
	"bankingsystem/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bankingsystem/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.JWTKey = []byte(cfg.JWT.Secret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	// === Repos ===
	clientRepo := repositories.NewClientRepository(db)
	cardRepo := repositories.NewBankCardRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	insuranceRepo := repositories.NewInsuranceRepository(db)
	fundRepo := repositories.NewFundRepository(db)
	financeRepo := repositories.NewFinanceProductRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)

	// === Services ===
	authService := services.NewAuthService(clientRepo, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	// Telegram уведомления опциональны (nil без токена)
	notifyService := services.NewNotifyService(cfg.Telegram.BotToken, cfg.Telegram.OpsChatID)

	clientService := services.NewClientService(clientRepo, emailService, authService)
	cardService := services.NewCardService(cardRepo, clientRepo)
	bankingService := services.NewBankingService(cardRepo, txRepo, notifyService)
	portfolioService := services.NewPortfolioService(clientRepo, cardRepo, txRepo, insuranceRepo, fundRepo)
	insuranceService := services.NewInsuranceService(insuranceRepo)
	fundService := services.NewFundService(fundRepo)
	productService := services.NewProductService(financeRepo, propertyRepo)

	statementGen := pdf.NewStatementGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(clientService, authService)
	clientHandler := handlers.NewClientHandler(clientService)
	cardHandler := handlers.NewCardHandler(cardService)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceService)
	fundHandler := handlers.NewFundHandler(fundService)
	productHandler := handlers.NewProductHandler(productService)
	transactionHandler := handlers.NewTransactionHandler(bankingService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, statementGen)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		clientHandler,
		cardHandler,
		insuranceHandler,
		fundHandler,
		productHandler,
		transactionHandler,
		portfolioHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
