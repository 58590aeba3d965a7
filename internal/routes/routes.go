package routes

import (
	"github.com/gin-gonic/gin"

	"bankingsystem/internal/handlers"
	"bankingsystem/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	cardHandler *handlers.CardHandler,
	insuranceHandler *handlers.InsuranceHandler,
	fundHandler *handlers.FundHandler,
	productHandler *handlers.ProductHandler,
	transactionHandler *handlers.TransactionHandler,
	portfolioHandler *handlers.PortfolioHandler,
) *gin.Engine {

	api := r.Group("/api")

	// ---- public
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// catalogs are browsable without a token
	api.GET("/insurances", insuranceHandler.List)
	api.GET("/insurances/:id", insuranceHandler.GetByID)
	api.GET("/funds", fundHandler.List)
	api.GET("/funds/:id", fundHandler.GetByID)
	api.GET("/finance-products", productHandler.ListFinanceProducts)
	api.GET("/finance-products/:id", productHandler.GetFinanceProduct)
	api.GET("/properties", productHandler.ListProperties)
	api.GET("/properties/:id", productHandler.GetProperty)

	// ---- protected
	protected := api.Group("", middleware.AuthMiddleware())

	clients := protected.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
	}

	cards := protected.Group("/bank-cards")
	{
		cards.POST("", cardHandler.Create)
		cards.GET("/client/:id", cardHandler.ListByClient)
	}

	protected.POST("/insurances/:id/purchase", insuranceHandler.Purchase)
	protected.POST("/funds/:id/invest", fundHandler.Invest)

	transactions := protected.Group("/transactions")
	{
		transactions.POST("/transfer", transactionHandler.Transfer)
		transactions.GET("/:id", transactionHandler.ListByClient)
	}

	portfolio := protected.Group("/portfolio")
	{
		portfolio.GET("/:id", portfolioHandler.Get)
		portfolio.GET("/:id/statement", portfolioHandler.DownloadStatement)
	}

	return r
}
