package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/server/http/dto"
)

const msgOrderAccepted = "Заказ получен и обработан"

type orderFacade interface {
	SubmitOrder(ctx context.Context, in model.OrderInput) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade orderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade orderFacade) *OrderHandler {
	useJSONFieldNames()
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/order.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.OrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderCreatedResponse{Success: true, Message: msgOrderAccepted, ID: order.ID})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
