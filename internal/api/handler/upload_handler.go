package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// UploadHandler accepts an image from the admin UI and streams it through to
// the backend upload endpoint.
type UploadHandler struct {
	uploads ports.UploadAPI
}

func NewUploadHandler(uploads ports.UploadAPI) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload handles POST /api/admin/uploads. Expects a multipart form with an
// "image" file field.
//
// @Summary      Upload a product image
// @Tags         admin-uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      201    {object}  ports.UploadedImage
// @Failure      400    {object}  errorResponse
// @Router       /api/admin/uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "image file is required"})
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := h.uploads.UploadImage(c.Request().Context(), fh.Filename, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, img)
}
