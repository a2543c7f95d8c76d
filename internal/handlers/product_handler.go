package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cylaba/internal/models"
	"cylaba/internal/repositories"
	"cylaba/internal/services"
	"cylaba/pkg/logger"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	log      *logger.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		log:      log.WithComponent("product_handler"),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns the whole catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		h.log.Errorw("Error getting all products", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleCreateProduct adds a product to the catalog. Properties other than
// the typed ones are stored as sent.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := bindJSON(c, &product); err != nil {
		h.log.Warnw("Error parsing request body", "error", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if keys := product.Mistyped(); len(keys) > 0 {
		return mistypedFields(c, keys)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		h.log.Errorw("Error creating product", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not save the product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleUpdateProduct merges the supplied properties into a product. Any
// id in the body is ignored.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}

	var patch models.ProductPatch
	if err := bindJSON(c, &patch); err != nil {
		h.log.Warnw("Error parsing request body", "error", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if keys := patch.Mistyped(); len(keys) > 0 {
		return mistypedFields(c, keys)
	}
	if err := h.validate.Struct(patch); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Product not found")
		}
		h.log.Errorw("Error updating product", "product_id", id, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not update the product")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleDeleteProduct removes a product by id. Unknown ids succeed.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		h.log.Debugw("Non-numeric product id, nothing to delete", "id", c.Params("id"))
		return c.JSON(fiber.Map{"success": true})
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		h.log.Errorw("Error deleting product", "product_id", id, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not delete the product")
	}
	return c.JSON(fiber.Map{"success": true})
}
