package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/service"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var req service.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.PlaceOrder(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order placed", "data": result})
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	orders, total, err := h.service.GetOrders(page, limit)
	if err != nil {
		return respondError(c, err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return c.JSON(fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"currentPage": page,
			"totalPages":  totalPages,
		},
	})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrderByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"order": order})
}

func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req struct {
		OrderStatusID string `json:"orderStatusId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	statusID, err := parseUUID(req.OrderStatusID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status ID"})
	}

	if err := h.service.UpdateOrderStatus(id, statusID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}
