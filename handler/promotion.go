package handler

import (
	"errors"
	"time"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetPromotions lists currently running promotions for the public site
func GetPromotions(c *fiber.Ctx) error {
	now := time.Now()

	var promotions []model.Promotion
	if err := database.DB.
		Preload("Destination").
		Where("status = ? AND start_date <= ? AND end_date >= ?", "active", now, now).
		Order("end_date asc").
		Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func CreatePromotion(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	promotion := new(model.Promotion)
	copier.Copy(&promotion, &input)
	promotion.Status = "active"

	if err := database.DB.Create(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, promotion)
}

func DeactivatePromotion(c *fiber.Ctx) error {
	promotionId, _ := c.Locals("inputId").(int)

	db := database.DB
	var promotion model.Promotion
	if err := db.First(&promotion, promotionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Promotion not found", err)
	}

	if err := db.Model(&promotion).Update("status", "inactive").Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Promotion deactivated")
}
