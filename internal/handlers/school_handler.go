package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cylaba/internal/repositories"
	"cylaba/internal/services"
	"cylaba/pkg/logger"
)

// SchoolRequest is the body of POST /schools.
type SchoolRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// SchoolHandler handles HTTP requests for schools.
type SchoolHandler struct {
	service  *services.SchoolService
	validate *validator.Validate
	log      *logger.Logger
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(service *services.SchoolService, log *logger.Logger) *SchoolHandler {
	return &SchoolHandler{
		service:  service,
		validate: validator.New(),
		log:      log.WithComponent("school_handler"),
	}
}

// RegisterRoutes registers the school routes with the Fiber app.
func (h *SchoolHandler) RegisterRoutes(router fiber.Router) {
	schoolRoutes := router.Group("/schools")
	schoolRoutes.Get("/", h.HandleGetSchools)
	schoolRoutes.Post("/", h.HandleCreateSchool)
	schoolRoutes.Delete("/:index", h.HandleDeleteSchool)
}

// HandleGetSchools returns the school names in stored order.
func (h *SchoolHandler) HandleGetSchools(c *fiber.Ctx) error {
	schools, err := h.service.GetAllSchools(c.UserContext())
	if err != nil {
		h.log.Errorw("Error getting all schools", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not retrieve schools")
	}
	return c.JSON(schools)
}

// HandleCreateSchool adds a school unless the name is empty or taken.
func (h *SchoolHandler) HandleCreateSchool(c *fiber.Ctx) error {
	var req SchoolRequest
	if err := bindJSON(c, &req); err != nil {
		h.log.Warnw("Error parsing request body", "error", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid school or already exists")
	}

	err := h.service.CreateSchool(c.UserContext(), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, repositories.ErrDuplicate) {
			return fail(c, fiber.StatusBadRequest, "Invalid school or already exists")
		}
		h.log.Errorw("Error adding school", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not save the school")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"school":  req.Name,
	})
}

// HandleDeleteSchool removes the school at a zero-based position.
func (h *SchoolHandler) HandleDeleteSchool(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fail(c, fiber.StatusNotFound, "School not found")
	}

	if err := h.service.DeleteSchool(c.UserContext(), index); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "School not found")
		}
		h.log.Errorw("Error deleting school", "index", index, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not delete the school")
	}
	return c.JSON(fiber.Map{"success": true})
}
