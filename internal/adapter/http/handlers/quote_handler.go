package handlers

import (
	"errors"
	"net/http"

	response "roofquote/internal/adapter/http/dto/response"
	"roofquote/internal/usecase"
	"roofquote/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves persisted checkout previews to the dashboard.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuote returns one persisted quote by id.
//
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id path string true "Quote ID"
// @Success      200 {object} response.QuoteResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes returns every persisted quote for an owner.
//
// @Summary      List quotes by owner
// @Tags         quotes
// @Produce      json
// @Param        owner_id query string true "Widget owner ID"
// @Success      200 {array} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByOwnerID(c.Request.Context(), c.Query("owner_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
