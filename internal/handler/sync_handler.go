package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/service"
	"go-shop-backend/internal/sync"
)

type SyncHandler struct {
	service service.SyncService
}

func NewSyncHandler(s service.SyncService) *SyncHandler {
	return &SyncHandler{service: s}
}

type fullSyncRequest struct {
	Products []sync.FeedRecord `json:"products"`
}

type insertRequest struct {
	Products []sync.InsertRecord `json:"products"`
}

type updateStockRequest struct {
	ProductsList interface{} `json:"productsList"`
}

func (h *SyncHandler) FullSync(c *fiber.Ctx) error {
	var req fullSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	res, err := h.service.FullSync(req.Products)
	if err != nil {
		return respondError(c, err)
	}

	if !res.Changed() && !res.Partial() {
		return c.JSON(fiber.Map{"message": "Nothing changed.", "result": res})
	}
	return c.JSON(fiber.Map{
		"message": syncMessage(res),
		"result":  res,
	})
}

func (h *SyncHandler) InsertProducts(c *fiber.Ctx) error {
	var req insertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	res, err := h.service.InsertProducts(req.Products)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": syncMessage(res), "result": res})
}

func (h *SyncHandler) UpdateStock(c *fiber.Ctx) error {
	var req updateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	res, err := h.service.RefreshStock(req.ProductsList)
	if err != nil {
		return respondError(c, err)
	}

	if !res.Changed() && !res.Partial() {
		return c.JSON(fiber.Map{"message": "Nothing changed.", "result": res})
	}
	return c.JSON(fiber.Map{"message": "Stock synchronized.", "result": res})
}

func (h *SyncHandler) Export(c *fiber.Ctx) error {
	rows, err := h.service.Export()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func syncMessage(res sync.Result) string {
	if res.Partial() {
		return "Synchronization finished with failed batches."
	}
	return "Synchronization finished."
}
