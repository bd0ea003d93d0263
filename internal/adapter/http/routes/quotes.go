package routes

import (
	"roofquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathCheckouts = "/checkouts"
)

func addQuoteRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/breakdown", checkoutHandler.ComputeBreakdown)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("", quoteHandler.ListQuotes)
	}

	checkouts := rg.Group(PathCheckouts)
	{
		checkouts.POST("", checkoutHandler.CreateCheckout)
	}
}
