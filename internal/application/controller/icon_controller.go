package controller

import (
	"net/http"
	"os"

	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type IconController struct {
	api      *echo.Group
	iconPath string
}

func NewIconController(api *echo.Group, iconPath string) *IconController {
	return &IconController{api: api, iconPath: iconPath}
}

// InitIconRoutes initializes icon routes
func (controller *IconController) InitIconRoutes() {
	controller.api.GET("/check-icon", controller.CheckIcon)
}

// CheckIcon godoc
// @Summary Application icon
// @Description Serves the touch icon so clients can verify it is deployed
// @Tags icon
// @Produce png
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} model.ErrorResponse "Icon not found"
// @Router /check-icon [get]
func (controller *IconController) CheckIcon(c echo.Context) error {
	icon, err := os.ReadFile(controller.iconPath)
	if err != nil {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("icon.error.not-found")})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=0, must-revalidate")
	return c.Blob(http.StatusOK, "image/png", icon)
}
