package routes

import (
	"vindicia_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTransactions   = "/transactions"
	PathCustomers      = "/customers"
	PathPaymentMethods = "/paymentmethods"
	PathPlans          = "/plans"
	PathProducts       = "/products"
	PathSubscriptions  = "/subscriptions"
	PathHOA            = "/hoa"
)

func addGatewayRoutes(
	rg *gin.RouterGroup,
	transactionHandler *handlers.TransactionHandler,
	customerHandler *handlers.CustomerHandler,
	catalogHandler *handlers.CatalogHandler,
	hoaHandler *handlers.HOAHandler,
) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("/authorize", transactionHandler.Authorize)
		transactions.POST("/purchase", transactionHandler.Purchase)
		transactions.POST("/:id/capture", transactionHandler.Capture)
		transactions.POST("/:id/void", transactionHandler.Void)
		transactions.POST("/:id/refunds", transactionHandler.Refund)
		transactions.GET("/:id", transactionHandler.GetTransaction)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.GET("/:id/transactions", transactionHandler.ListRecordsByCustomerID)
	}

	paymentMethods := rg.Group(PathPaymentMethods)
	{
		paymentMethods.POST("", customerHandler.CreatePaymentMethod)
		paymentMethods.GET("/:id", customerHandler.GetPaymentMethod)
	}

	rg.POST(PathPlans, catalogHandler.CreatePlan)
	rg.GET(PathPlans+"/:id", catalogHandler.GetPlan)
	rg.POST(PathProducts, catalogHandler.CreateProduct)
	rg.GET(PathProducts+"/:id", catalogHandler.GetProduct)

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("", catalogHandler.CreateSubscription)
		subscriptions.GET("/:id", catalogHandler.GetSubscription)
		subscriptions.DELETE("/:id", catalogHandler.CancelSubscription)
	}

	hoa := rg.Group(PathHOA)
	{
		hoa.POST("/authorize", hoaHandler.InitiateAuthorize)
		hoa.POST("/purchase", hoaHandler.InitiatePurchase)
		hoa.POST("/paymentmethods", hoaHandler.InitiatePaymentMethod)
		hoa.POST("/subscriptions", hoaHandler.InitiateSubscription)
		hoa.POST("/:session/complete", hoaHandler.Complete)
	}
}
