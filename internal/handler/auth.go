package handler

import (
	"errors"
	"net/http"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/apierror"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login checks the operator credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierror.New("Invalid username or password"))
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
