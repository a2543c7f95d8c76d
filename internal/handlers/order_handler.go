package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cylaba/internal/models"
	"cylaba/internal/services"
	"cylaba/pkg/logger"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
	log     *logger.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.WithComponent("order_handler"),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleGetOrders returns every order in insertion order.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.UserContext())
	if err != nil {
		h.log.Errorw("Error getting all orders", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleCreateOrder creates a new order from whatever fields the caller
// sends. A body that is empty or not sent as JSON creates an order with no
// caller fields.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var payload models.Order
	if err := bindJSON(c, &payload); err != nil {
		h.log.Warnw("Error parsing request body", "error", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	order, err := h.service.CreateOrder(c.UserContext(), payload)
	if err != nil {
		h.log.Errorw("Error creating order", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not save the order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleDeleteOrder removes an order by id. Ids that are absent or not
// numeric match nothing and still succeed.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		h.log.Debugw("Non-numeric order id, nothing to delete", "id", c.Params("id"))
		return c.JSON(fiber.Map{"success": true})
	}

	if err := h.service.DeleteOrder(c.UserContext(), id); err != nil {
		h.log.Errorw("Error deleting order", "order_id", id, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not delete the order")
	}
	return c.JSON(fiber.Map{"success": true})
}
