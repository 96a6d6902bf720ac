package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	"go-shop-backend/pkg/validator"
)

type MessageHandler struct {
	repo repository.MessageRepository
}

func NewMessageHandler(repo repository.MessageRepository) *MessageHandler {
	return &MessageHandler{repo: repo}
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var message model.Message
	if err := c.BodyParser(&message); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&message); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: Field '" + first.FailedField + "' failed on tag '" + first.Tag + "'",
		})
	}

	if err := h.repo.Create(&message); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Message sent"})
}

func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	receiverID, err := parseUUID(c.Params("receiverId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receiver ID"})
	}

	messages, err := h.repo.FindByReceiver(receiverID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid message ID"})
	}
	senderID, err := parseUUID(c.Params("senderId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sender ID"})
	}

	if err := h.repo.Delete(id, senderID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message deleted"})
}
