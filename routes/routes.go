package routes

import (
	"errors"
	"fmt"
	"log"
	"time"

	"windowmart/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler carries the injected store handle shared by all procedures.
type Handler struct {
	db       *gorm.DB
	validate *validator.Validate
}

// SetupRoutes mounts the RPC surface. Queries are GET and take their input
// from query parameters; mutations are POST and take a JSON body.
func SetupRoutes(app *fiber.App, database *gorm.DB) {
	h := &Handler{db: database, validate: validator.New()}

	rpc := app.Group("/rpc")

	rpc.Get("/healthcheck", h.healthcheck)

	// Window collection procedures
	rpc.Post("/createWindowCollection", h.createWindowCollection)
	rpc.Get("/getWindowCollections", h.getWindowCollections)
	rpc.Get("/getWindowCollectionById", h.getWindowCollectionByID)
	rpc.Post("/updateWindowCollection", h.updateWindowCollection)
	rpc.Post("/deleteWindowCollection", h.deleteWindowCollection)

	// Window procedures
	rpc.Post("/createWindow", h.createWindow)
	rpc.Get("/getWindowsByCollection", h.getWindowsByCollection)
	rpc.Post("/updateWindow", h.updateWindow)
	rpc.Post("/deleteWindow", h.deleteWindow)
}

type idInput struct {
	ID uint `json:"id" validate:"required"`
}

func (h *Handler) healthcheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) createWindowCollection(c *fiber.Ctx) error {
	input := new(models.CreateWindowCollectionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	collection := models.WindowCollection{
		Name:         input.Name,
		Description:  input.Description,
		MainImageURL: input.MainImageURL,
		BrandName:    input.BrandName,
	}
	if err := h.db.Create(&collection).Error; err != nil {
		log.Println("Window collection creation failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create window collection",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(collection)
}

func (h *Handler) getWindowCollections(c *fiber.Ctx) error {
	collections := []models.WindowCollection{}
	if err := h.db.Find(&collections).Error; err != nil {
		log.Println("Failed to fetch window collections:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get window collections",
		})
	}

	return c.JSON(collections)
}

func (h *Handler) getWindowCollectionByID(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'id' is required",
		})
	}

	var collection models.WindowCollection
	if err := h.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		log.Println("Get window collection by ID failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get window collection",
		})
	}

	// Two simple queries instead of a left join; no null window rows to
	// filter when the collection is empty.
	var windows []models.Window
	if err := h.db.Where("collection_id = ?", collection.ID).Find(&windows).Error; err != nil {
		log.Println("Get window collection by ID failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get windows for collection",
		})
	}

	response := models.WindowCollectionWithWindows{
		WindowCollection: collection,
		Windows:          make([]models.WindowResponse, 0, len(windows)),
	}
	for i := range windows {
		window, err := windows[i].ToResponse()
		if err != nil {
			log.Println("Get window collection by ID failed:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read window record",
			})
		}
		response.Windows = append(response.Windows, window)
	}

	return c.JSON(response)
}

func (h *Handler) updateWindowCollection(c *fiber.Ctx) error {
	input := new(models.UpdateWindowCollectionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var collection models.WindowCollection
	if err := h.db.First(&collection, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		log.Println("Window collection update failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find window collection",
		})
	}

	// No fields beyond id is a no-op read of the current record.
	fields := input.Fields()
	if len(fields) == 0 {
		return c.JSON(collection)
	}

	if err := h.db.Model(&collection).Updates(fields).Error; err != nil {
		log.Println("Window collection update failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update window collection",
		})
	}

	return c.JSON(collection)
}

func (h *Handler) deleteWindowCollection(c *fiber.Ctx) error {
	input := new(idInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Owned windows go with the collection via the cascade constraint.
	result := h.db.Delete(&models.WindowCollection{}, input.ID)
	if result.Error != nil {
		log.Println("Window collection deletion failed:", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete window collection",
		})
	}

	return c.JSON(result.RowsAffected > 0)
}

func (h *Handler) createWindow(c *fiber.Ctx) error {
	input := new(models.CreateWindowInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Verify the collection exists first for a clear error ahead of a raw
	// foreign key violation. Not atomic with the insert; the constraint is
	// the real backstop if the collection disappears in between.
	var collection models.WindowCollection
	if err := h.db.First(&collection, input.CollectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Window collection with id %d not found", input.CollectionID),
			})
		}
		log.Println("Window creation failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find window collection",
		})
	}

	window := models.Window{
		CollectionID:     input.CollectionID,
		Price:            models.FormatPrice(input.Price),
		Description:      input.Description,
		MainImageURL:     input.MainImageURL,
		GalleryImageURLs: models.EncodeGallery(input.GalleryImageURLs),
	}
	if err := h.db.Create(&window).Error; err != nil {
		log.Println("Window creation failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create window",
		})
	}

	response, err := window.ToResponse()
	if err != nil {
		log.Println("Window creation failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read window record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *Handler) getWindowsByCollection(c *fiber.Ctx) error {
	collectionID := c.QueryInt("collectionId")
	if collectionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'collectionId' is required",
		})
	}

	// No existence check here: an unknown collection and an empty one both
	// read as the empty sequence.
	var windows []models.Window
	if err := h.db.Where("collection_id = ?", collectionID).Find(&windows).Error; err != nil {
		log.Println("Failed to get windows by collection:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get windows",
		})
	}

	responses := make([]models.WindowResponse, 0, len(windows))
	for i := range windows {
		window, err := windows[i].ToResponse()
		if err != nil {
			log.Println("Failed to get windows by collection:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read window record",
			})
		}
		responses = append(responses, window)
	}

	return c.JSON(responses)
}

func (h *Handler) updateWindow(c *fiber.Ctx) error {
	input := new(models.UpdateWindowInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Unlike collection updates, no fields beyond id yields null here.
	fields := input.Fields()
	if len(fields) == 0 {
		return c.JSON(nil)
	}

	var window models.Window
	if err := h.db.First(&window, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		log.Println("Window update failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find window",
		})
	}

	// A reassigned collection_id is not re-checked here; the foreign key
	// constraint rejects an unknown parent as a store error.
	if err := h.db.Model(&window).Updates(fields).Error; err != nil {
		log.Println("Window update failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update window",
		})
	}

	response, err := window.ToResponse()
	if err != nil {
		log.Println("Window update failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read window record",
		})
	}

	return c.JSON(response)
}

func (h *Handler) deleteWindow(c *fiber.Ctx) error {
	input := new(idInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := h.db.Delete(&models.Window{}, input.ID)
	if result.Error != nil {
		log.Println("Window deletion failed:", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete window",
		})
	}

	return c.JSON(result.RowsAffected > 0)
}
