package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	PhoneNumber       string `json:"phone_number"`
	Address           string `json:"address"`
	AdditionalAddress string `json:"additional_address"`
	City              string `json:"city"`
	ZipCode           string `json:"zip_code"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type protectedResponse struct {
	Message string   `json:"message"`
	User    identity `json:"user"`
}

func (s *Server) register(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	token, err := s.users.Register(ctx, services.RegisterRequest{
		Email:             req.Email,
		Password:          req.Password,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		AdditionalAddress: req.AdditionalAddress,
		City:              req.City,
		ZipCode:           req.ZipCode,
	})
	if err != nil {
		status, msg := registrationError(err)
		if status == http.StatusInternalServerError {
			s.logger.Error(ctx, "registration failed", "error", err.Error())
		}
		return c.JSON(status, messageResponse{Message: msg})
	}

	s.logger.Info(ctx, "user registered", "email", req.Email)
	return c.JSON(http.StatusOK, tokenResponse{Message: "user created successfully", Token: token})
}

func (s *Server) login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		// every failure is reported the same way; nothing about the
		// cause may reach the client
		if errors.Is(err, common.ErrorEmailPasswordRequired) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: common.ErrorEmailPasswordRequired.Error()})
		}
		return c.JSON(http.StatusBadRequest, messageResponse{Message: common.ErrorIncorrectCredentials.Error()})
	}

	return c.JSON(http.StatusOK, tokenResponse{Message: "login successful", Token: token})
}

func (s *Server) protected(c echo.Context) error {
	claims := guardClaims(c)
	return c.JSON(http.StatusOK, protectedResponse{
		Message: "access granted",
		User:    identity{UserID: claims.UserID, Email: claims.Email},
	})
}

func (s *Server) greet(c echo.Context) error {
	claims := guardClaims(c)
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Hello, %s!", claims.Email)})
}

// registrationError maps service errors to a status code and a user-facing
// message. Internal details never reach the client.
func registrationError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorEmailPasswordRequired),
		errors.Is(err, common.ErrorInvalidEmailFormat),
		errors.Is(err, common.ErrorInvalidPasswordFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, "email is already in use"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
