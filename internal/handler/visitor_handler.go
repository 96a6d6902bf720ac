package handler

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/cache"
	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
)

type VisitorHandler struct {
	repo    repository.VisitorRepository
	counter *cache.VisitorCounter // nil when Redis is not configured
}

func NewVisitorHandler(repo repository.VisitorRepository, counter *cache.VisitorCounter) *VisitorHandler {
	return &VisitorHandler{repo: repo, counter: counter}
}

func (h *VisitorHandler) RecordVisit(c *fiber.Ctx) error {
	visitor := &model.Visitor{
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if err := h.repo.Record(visitor); err != nil {
		return respondError(c, err)
	}

	if h.counter != nil {
		if err := h.counter.Incr(c.Context()); err != nil {
			log.Println("visitor counter:", err)
		}
	}
	return c.SendStatus(201)
}

func (h *VisitorHandler) TodayCount(c *fiber.Ctx) error {
	if h.counter != nil {
		if n, err := h.counter.TodayCount(c.Context()); err == nil && n > 0 {
			return c.JSON(n)
		}
	}

	midnight := time.Now().Truncate(24 * time.Hour)
	count, err := h.repo.CountSince(midnight)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(count)
}

func (h *VisitorHandler) GetVisitors(c *fiber.Ctx) error {
	visitors, err := h.repo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"visitors": visitors})
}

func (h *VisitorHandler) MonthlyCounts(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	counts, err := h.repo.MonthlyCounts(year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"months": counts})
}
