package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

func Register(c *fiber.Ctx) error {
	registerInput, ok := c.Locals("input").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	db := database.DB

	hash, err := helper.HashPassword(registerInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newUser := new(model.User)
	copier.Copy(&newUser, &registerInput)
	newUser.Password = hash
	newUser.Role = model.RoleUser
	newUser.Active = true

	if err := db.Create(&newUser).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_REGISTED, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":    newUser.ID,
		"name":  newUser.Name,
		"email": newUser.Email,
	})
}

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	userModel, err := helper.GetUserByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_EMAIL, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, userModel.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	if !userModel.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account disabled"))
	}

	tokenClaim := model.TokenClaim{
		UserId: userModel.ID,
		Email:  userModel.Email,
		Role:   userModel.Role,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":    userModel.ID,
			"name":  userModel.Name,
			"email": userModel.Email,
			"role":  userModel.Role,
		},
		"token": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type RefreshTokenRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req RefreshTokenRequest
		if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing refresh token", err)
		}
		refreshToken = req.RefreshToken
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	userId := uint(claims["userId"].(float64))

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	newToken, err := helper.GenerateAccessToken(model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"accessToken": newToken})
}

func Me(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || user.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	})
}

func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || user.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in", nil)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, nil)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&user).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Password changed")
}

func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	db := database.DB

	var user model.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		// do not reveal whether the address exists
		return utils.SuccessResponse(c, fiber.StatusOK, "If the email is registered, a reset link has been sent")
	}

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{input.Email}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Click the link to reset your password: %s", resetLink))
	addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	if err := e.Send(addr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send reset email", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "If the email is registered, a reset link has been sent")
}

func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	db := database.DB

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ? AND used = false", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token is invalid or expired", err)
	}

	var user model.User
	if err := db.First(&user, resetToken.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&user).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	db.Model(&resetToken).Update("used", true)

	return utils.SuccessResponse(c, fiber.StatusOK, "Password has been reset")
}
