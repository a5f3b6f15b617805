package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetDestinations serves the public catalog. Results are cached in redis per
// query shape; the cache falls through to the database when unavailable.
func GetDestinations(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")
	featured := c.Query("featured")

	cacheKey := fmt.Sprintf("destinations:%s:%s:%s", category, search, featured)
	if cached, ok := helper.CacheGetDestinations(cacheKey); ok {
		var payload []model.Destination
		if err := json.Unmarshal(cached, &payload); err == nil {
			return utils.SuccessResponse(c, fiber.StatusOK, payload)
		}
	}

	query := database.DB.Model(&model.Destination{}).Where("active = true")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", like, like)
	}
	if featured == "true" {
		query = query.Where("featured = true")
	}

	var destinations []model.Destination
	if err := query.Order("featured desc, name asc").Find(&destinations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.CacheSetDestinations(cacheKey, destinations)

	return utils.SuccessResponse(c, fiber.StatusOK, destinations)
}

func GetDestinationDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var destination model.Destination
	if err := database.DB.
		Preload("TicketTypes").
		Where("slug = ? AND active = true", slug).
		First(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, destination)
}

func GetTicketTypesByDestination(c *fiber.Ctx) error {
	destinationId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	var ticketTypes []model.TicketType
	if err := database.DB.
		Where("destination_id = ?", destinationId).
		Order("price asc").
		Find(&ticketTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketTypes)
}

// ===== Admin =====

func CreateDestination(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateDestinationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	db := database.DB

	destination := new(model.Destination)
	copier.Copy(&destination, &input)
	destination.Slug = helper.GenerateUniqueDestinationSlug(db, input.Name)
	destination.Active = true

	if err := db.Create(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateDestinationCache()

	return utils.SuccessResponse(c, fiber.StatusCreated, destination)
}

func EditDestination(c *fiber.Ctx) error {
	destinationId, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.EditDestinationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	db := database.DB

	var destination model.Destination
	if err := db.First(&destination, destinationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
		updates["slug"] = helper.GenerateUniqueDestinationSlug(db, *input.Name)
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageUrl != nil {
		updates["image_url"] = *input.ImageUrl
	}
	if input.BasePrice != nil {
		updates["base_price"] = *input.BasePrice
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := db.Model(&destination).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	helper.InvalidateDestinationCache()

	return utils.SuccessResponse(c, fiber.StatusOK, destination)
}

// UploadDestinationImage stores the image on Cloudinary and saves its URL
func UploadDestinationImage(c *fiber.Ctx) error {
	destinationId, _ := c.Locals("inputId").(int)

	db := database.DB
	var destination model.Destination
	if err := db.First(&destination, destinationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot open uploaded file", err)
	}
	defer file.Close()

	url, err := helper.UploadFile(file, "destinations", fmt.Sprintf("destination_%d", destination.ID))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	if err := db.Model(&destination).Update("image_url", url).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateDestinationCache()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": url})
}

// DisableDestination takes a listing off the public catalog without deleting
// its booking history.
func DisableDestination(c *fiber.Ctx) error {
	destinationId, _ := c.Locals("inputId").(int)

	db := database.DB
	var destination model.Destination
	if err := db.First(&destination, destinationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	if err := db.Model(&destination).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateDestinationCache()

	return utils.SuccessResponse(c, fiber.StatusOK, "Destination disabled")
}

func CreateTicketType(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTicketTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	db := database.DB

	var destination model.Destination
	if err := db.First(&destination, input.DestinationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	ticketType := new(model.TicketType)
	copier.Copy(&ticketType, &input)

	if err := db.Create(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ticketType)
}

func DeleteTicketType(c *fiber.Ctx) error {
	ticketTypeId, _ := c.Locals("inputId").(int)

	db := database.DB
	var ticketType model.TicketType
	if err := db.First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.Booking{}).Where("ticket_type_id = ?", ticketType.ID).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ticket type has bookings and cannot be deleted", nil)
	}

	if err := db.Delete(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Ticket type deleted")
}
