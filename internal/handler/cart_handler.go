package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/service"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	customerID, err := parseUUID(c.Locals("user_id").(string))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	cart, err := h.service.GetCart(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req struct {
		Barcode  string `json:"barcode"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customerID, err := parseUUID(c.Locals("user_id").(string))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := h.service.AddToCart(customerID, req.Barcode, req.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product added to cart"})
}

func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	var req struct {
		ShoppingCartID string `json:"shoppingCartId"`
		Barcode        string `json:"barcode"`
		Quantity       int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cartID, err := parseUUID(req.ShoppingCartID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cart ID"})
	}

	if err := h.service.ChangeQuantity(cartID, req.Barcode, req.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Quantity changed"})
}

func (h *CartHandler) DeleteFromCart(c *fiber.Ctx) error {
	var req struct {
		ShoppingCartItemID string `json:"shoppingCartItemId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	itemID, err := parseUUID(req.ShoppingCartItemID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.RemoveItem(itemID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}

func (h *CartHandler) ToggleWishlist(c *fiber.Ctx) error {
	var req struct {
		PhoneNumber string `json:"phoneNumber"`
		Barcode     string `json:"barcode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	added, err := h.service.ToggleWishlist(req.PhoneNumber, req.Barcode)
	if err != nil {
		return respondError(c, err)
	}
	if added {
		return c.JSON(fiber.Map{"message": "Product added to wishlist"})
	}
	return c.JSON(fiber.Map{"message": "Product removed from wishlist"})
}
