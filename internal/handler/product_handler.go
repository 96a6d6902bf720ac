package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	"go-shop-backend/pkg/validator"
)

// ProductHandler serves the catalog read side plus direct management writes.
// Bulk mutation goes through the sync endpoints instead.
type ProductHandler struct {
	repo repository.ProductRepository
}

func NewProductHandler(repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

func (h *ProductHandler) FetchProducts(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	products, total, err := h.repo.FindPage(page, limit, c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return c.JSON(fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"currentPage": page,
			"totalPages":  totalPages,
		},
	})
}

// ClientProducts returns only rows a storefront can sell (stock > 0).
func (h *ProductHandler) ClientProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	products, err := h.repo.FindInStock(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.repo.FindByBarcode(c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: Field '" + first.FailedField + "' failed on tag '" + first.Tag + "'",
		})
	}

	if err := h.repo.Create(&product); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	existing, err := h.repo.FindByBarcode(c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}

	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	req.ID = existing.ID
	req.Barcode = existing.Barcode
	if err := h.repo.Update(&req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": req})
}
