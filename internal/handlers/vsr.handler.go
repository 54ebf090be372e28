package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/app"
	vsrController "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/controllers/vsr"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/repositories"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type VSRHandler struct {
	Handler
	controller vsrController.VSRController
}

func NewVSRHandler(app app.App, router fiber.Router) *VSRHandler {
	log := logger.New("handlers").File("vsr_handler")
	return &VSRHandler{
		controller: *app.VSRController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *VSRHandler) Register() {
	vsrs := h.router.Group("/vsr")

	vsrs.Post("/", h.createVSR)
	vsrs.Get("/", h.middleware.RequireStaff, h.listVSRs)

	// Registered before "/:id" so "bulk_export" is not captured as an id.
	vsrs.Get("/bulk_export", h.middleware.RequireStaff, h.bulkExport)

	vsrs.Get("/:id", h.middleware.RequireStaff, h.getVSR)
	vsrs.Put("/:id", h.middleware.RequireStaff, h.updateVSR)
	vsrs.Patch("/:id/status", h.middleware.RequireStaff, h.updateStatus)
	vsrs.Delete("/:id", h.middleware.RequireAdmin, h.deleteVSR)
}

func (h *VSRHandler) createVSR(c *fiber.Ctx) error {
	log := h.log.Function("createVSR")

	var request vsrController.VSRRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse VSR request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse VSR request"})
	}

	vsr, err := h.controller.CreateVSR(c.Context(), &request)
	if err != nil {
		return h.errorResponse(c, err, "failed to create VSR")
	}

	return c.Status(fiber.StatusCreated).JSON(vsr)
}

func (h *VSRHandler) listVSRs(c *fiber.Ctx) error {
	vsrs, err := h.controller.ListVSRs(c.Context(), parseVSRFilter(c))
	if err != nil {
		return h.errorResponse(c, err, "failed to list VSRs")
	}

	return c.JSON(fiber.Map{"vsrs": vsrs})
}

func (h *VSRHandler) getVSR(c *fiber.Ctx) error {
	vsr, err := h.controller.GetVSR(c.Context(), c.Params("id"))
	if err != nil {
		return h.errorResponse(c, err, "failed to get VSR")
	}

	return c.JSON(vsr)
}

func (h *VSRHandler) updateVSR(c *fiber.Ctx) error {
	log := h.log.Function("updateVSR")

	var request vsrController.VSRRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse VSR request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse VSR request"})
	}

	vsr, err := h.controller.UpdateVSR(c.Context(), c.Params("id"), &request)
	if err != nil {
		return h.errorResponse(c, err, "failed to update VSR")
	}

	return c.JSON(vsr)
}

func (h *VSRHandler) updateStatus(c *fiber.Ctx) error {
	log := h.log.Function("updateStatus")

	var request struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse status request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse status request"})
	}

	vsr, err := h.controller.UpdateVSRStatus(c.Context(), c.Params("id"), request.Status)
	if err != nil {
		return h.errorResponse(c, err, "failed to update VSR status")
	}

	return c.JSON(vsr)
}

func (h *VSRHandler) deleteVSR(c *fiber.Ctx) error {
	if err := h.controller.DeleteVSR(c.Context(), c.Params("id")); err != nil {
		return h.errorResponse(c, err, "failed to delete VSR")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VSRHandler) bulkExport(c *fiber.Ctx) error {
	log := h.log.Function("bulkExport")

	file, err := h.controller.ExportVSRs(c.Context(), parseVSRFilter(c))
	if err != nil {
		return h.errorResponse(c, err, "failed to export VSRs")
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		log.Er("failed to serialize spreadsheet", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export VSRs"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="`+utils.XlsxExportFilename(time.Now())+`"`)
	return c.Send(buffer.Bytes())
}

// parseVSRFilter reads the shared filter query params used by both the list
// view and the bulk export. zipCode and vsrIds are comma-joined.
func parseVSRFilter(c *fiber.Ctx) repositories.VSRFilter {
	return repositories.VSRFilter{
		Search:      strings.TrimSpace(c.Query("search")),
		Status:      strings.TrimSpace(c.Query("status")),
		IncomeLevel: strings.TrimSpace(c.Query("incomeLevel")),
		ZipCodes:    splitCommaList(c.Query("zipCode")),
		IDs:         splitCommaList(c.Query("vsrIds")),
	}
}

func splitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func (h *VSRHandler) errorResponse(c *fiber.Ctx, err error, msg string) error {
	log := h.log.Function("errorResponse")

	switch {
	case errors.Is(err, vsrController.ErrValidation):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": msg, "error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "VSR not found"})
	default:
		log.Er(msg, err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": msg})
	}
}
