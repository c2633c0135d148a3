package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"banner-studio/internal/core/logger"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// BannerHandler handles HTTP requests for the banner editor.
type BannerHandler struct {
	service ports.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service ports.BannerService) *BannerHandler {
	return &BannerHandler{
		service: service,
	}
}

// TextRequest carries a free-form text value.
type TextRequest struct {
	Value string `json:"value" validate:"max=1000"`
}

// ChoiceRequest carries a value picked from a fixed list (language, font).
type ChoiceRequest struct {
	Value string `json:"value" validate:"required"`
}

// ColorRequest carries a #rgb or #rrggbb color.
type ColorRequest struct {
	Value string `json:"value" validate:"required,hexcolor"`
}

// OpacityRequest carries an overlay opacity. Out-of-range values are clamped.
type OpacityRequest struct {
	Value *float64 `json:"value" validate:"required"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RegisterRoutes mounts every banner route under /banner.
func (h *BannerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/banner", h.GetBanner)
	router.Get("/banner/options", h.GetOptions)

	g := router.Group("/banner")
	g.Put("/title", h.SetTitle)
	g.Put("/body", h.SetBody)
	g.Put("/language", h.SetLanguage)
	g.Put("/font", h.SetFont)
	g.Put("/text-color", h.SetTextColor)
	g.Put("/background-color", h.SetBackgroundColor)
	g.Put("/overlay-opacity", h.SetOverlayOpacity)
	g.Post("/background-image", h.UploadBackgroundImage)
	g.Delete("/background-image", h.RemoveBackgroundImage)
	g.Delete("/notification", h.ClearNotification)
	g.Post("/dismiss", h.Dismiss)
	g.Get("/blobs/:id", h.GetBlob)
}

// GetBanner handles GET /banner.
// @Summary Get the banner
// @Description Returns the banner configuration, its display text, the visible notification and visibility.
// @Tags Banner
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /banner [get]
func (h *BannerHandler) GetBanner(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Snapshot())
}

// GetOptions handles GET /banner/options.
// @Summary List editor choices
// @Description Returns the font catalog, background color presets and supported languages.
// @Tags Banner
// @Produce json
// @Success 200 {object} domain.Options
// @Router /banner/options [get]
func (h *BannerHandler) GetOptions(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Options())
}

// SetTitle handles PUT /banner/title.
// @Summary Set the title
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body TextRequest true "New title"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /banner/title [put]
func (h *BannerHandler) SetTitle(c *fiber.Ctx) error {
	var req TextRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetTitle(c.Context(), req.Value))
}

// SetBody handles PUT /banner/body.
// @Summary Set the body text
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body TextRequest true "New body"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /banner/body [put]
func (h *BannerHandler) SetBody(c *fiber.Ctx) error {
	var req TextRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetBody(c.Context(), req.Value))
}

// SetLanguage handles PUT /banner/language.
// @Summary Switch the display language
// @Description Accepts the configured language codes or the aliases "native" and "target".
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body ChoiceRequest true "Language code"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /banner/language [put]
func (h *BannerHandler) SetLanguage(c *fiber.Ctx) error {
	var req ChoiceRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetLanguage(c.Context(), req.Value))
}

// SetFont handles PUT /banner/font.
// @Summary Set the font
// @Description Accepts a font label ("Arial") or CSS value ("Arial, sans-serif").
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body ChoiceRequest true "Font"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /banner/font [put]
func (h *BannerHandler) SetFont(c *fiber.Ctx) error {
	var req ChoiceRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetFont(c.Context(), req.Value))
}

// SetTextColor handles PUT /banner/text-color.
// @Summary Set the text color
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body ColorRequest true "Hex color"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /banner/text-color [put]
func (h *BannerHandler) SetTextColor(c *fiber.Ctx) error {
	var req ColorRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetTextColor(c.Context(), req.Value))
}

// SetBackgroundColor handles PUT /banner/background-color.
// @Summary Set the solid background color
// @Description Rejected with 409 while a background image is set.
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body ColorRequest true "Hex color"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /banner/background-color [put]
func (h *BannerHandler) SetBackgroundColor(c *fiber.Ctx) error {
	var req ColorRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetBackgroundColor(c.Context(), req.Value))
}

// SetOverlayOpacity handles PUT /banner/overlay-opacity.
// @Summary Set the image overlay opacity
// @Tags Banner
// @Accept json
// @Produce json
// @Param request body OpacityRequest true "Opacity between 0 and 1"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /banner/overlay-opacity [put]
func (h *BannerHandler) SetOverlayOpacity(c *fiber.Ctx) error {
	var req OpacityRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}
	return h.respond(c, h.service.SetOverlayOpacity(c.Context(), *req.Value))
}

// UploadBackgroundImage handles POST /banner/background-image.
// @Summary Upload a background image
// @Description Accepts a png or jpeg of at most the configured size in the "file" form field.
// @Tags Banner
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /banner/background-image [post]
func (h *BannerHandler) UploadBackgroundImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return h.fail(c, http.StatusBadRequest, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return h.fail(c, http.StatusBadRequest, "unable to read file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, "unable to read file")
	}

	upload := domain.UploadFile{
		Name:      fh.Filename,
		MimeType:  fh.Header.Get(fiber.HeaderContentType),
		SizeBytes: fh.Size,
		Bytes:     data,
	}
	return h.respond(c, h.service.SetBackgroundImage(c.Context(), upload))
}

// RemoveBackgroundImage handles DELETE /banner/background-image.
// @Summary Remove the background image
// @Description Restores the solid color that was set before the image.
// @Tags Banner
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 409 {object} ErrorResponse
// @Router /banner/background-image [delete]
func (h *BannerHandler) RemoveBackgroundImage(c *fiber.Ctx) error {
	return h.respond(c, h.service.RemoveBackgroundImage(c.Context()))
}

// ClearNotification handles DELETE /banner/notification.
// @Summary Hide the current confirmation
// @Description A raised contrast warning stays visible.
// @Tags Banner
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /banner/notification [delete]
func (h *BannerHandler) ClearNotification(c *fiber.Ctx) error {
	h.service.ClearNotification()
	return c.Status(http.StatusOK).JSON(h.service.Snapshot())
}

// Dismiss handles POST /banner/dismiss.
// @Summary Dismiss the banner
// @Description Hides the banner for the rest of the session. Later edits are ignored.
// @Tags Banner
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /banner/dismiss [post]
func (h *BannerHandler) Dismiss(c *fiber.Ctx) error {
	return h.respond(c, h.service.Dismiss(c.Context()))
}

// GetBlob handles GET /banner/blobs/{id}.
// @Summary Fetch a background image
// @Tags Banner
// @Produce png
// @Produce jpeg
// @Param id path string true "Image ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /banner/blobs/{id} [get]
func (h *BannerHandler) GetBlob(c *fiber.Ctx) error {
	blob, err := h.service.OpenImage(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, blob.MimeType)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(http.StatusOK).Send(blob.Data)
}

// bind parses and validates the body. When it reports false the error
// response has already been written.
func (h *BannerHandler) bind(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, h.fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return false, h.fail(c, http.StatusBadRequest, validationMessage(err))
	}
	return true, nil
}

func (h *BannerHandler) respond(c *fiber.Ctx, err error) error {
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(h.service.Snapshot())
}

func (h *BannerHandler) respondError(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Get().Error("Banner request failed",
			zap.String("path", c.Path()),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}
	return h.fail(c, status, msg)
}

func (h *BannerHandler) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, domain.ErrInvalidMimeType):
		return http.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrUnsupportedFont),
		errors.Is(err, domain.ErrUnsupportedLanguage):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrImageBackgroundActive),
		errors.Is(err, domain.ErrNoBackgroundImage):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ports.ErrBlobNotFound):
		return http.StatusNotFound, "Image not found"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err.Error()
	}
	fe := vErrs[0]
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
