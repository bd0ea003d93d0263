package handlers

import (
	"errors"
	"log"
	"net/http"

	request "roofquote/internal/adapter/http/dto/request"
	response "roofquote/internal/adapter/http/dto/response"
	"roofquote/internal/usecase"
	"roofquote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles quote-to-checkout requests from the widget.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout assembles a checkout from a surface area or explicit pack
// counts.
//
// @Summary      Assemble a checkout
// @Tags         checkouts
// @Accept       json
// @Produce      json
// @Param        payload body request.CheckoutRequest true "Checkout input"
// @Success      200 {object} response.CheckoutResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      412 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /checkouts [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	ownerID := payload.ResolveOwnerID()
	log.Printf("[checkout][handler] create start owner_id=%s", ownerID)

	result, err := h.usecase.AssembleCheckout(c.Request.Context(), ownerID, payload.ToInput())
	if err != nil {
		log.Printf("[checkout][handler] create failed owner_id=%s err=%v", ownerID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success owner_id=%s items=%d", ownerID, result.Summary.ItemCount)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// ComputeBreakdown returns the bill of materials for an area without
// building a checkout.
//
// @Summary      Compute a material breakdown
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload body request.BreakdownRequest true "Breakdown input"
// @Success      200 {object} response.BreakdownResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      412 {object} pkg.HTTPError
// @Router       /quotes/breakdown [post]
func (h *CheckoutHandler) ComputeBreakdown(c *gin.Context) {
	var payload request.BreakdownRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.BreakdownForArea(c.Request.Context(), payload.ResolveOwnerID(), payload.AreaM2)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidArea),
		errors.Is(err, usecase.ErrNoQuoteInput),
		errors.Is(err, usecase.ErrTooManyCountSizes),
		errors.Is(err, usecase.ErrEmptyLineItems):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlatformNotConnected):
		return pkg.NewDomainError("PLATFORM_NOT_CONNECTED", "Commerce platform is not connected for this widget", err, http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrCatalogEmpty):
		return pkg.NewDomainError("CATALOG_EMPTY", "No catalog entries are configured for this widget", err, http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrDraftOrderFailed):
		return pkg.NewDomainError("PLATFORM_ERROR", err.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
