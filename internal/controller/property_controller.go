package controller

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/middleware"
	"kejani_backend/internal/repository"
	"kejani_backend/pkg/utils/validation"
)

const MaxPropertyImages = 16

type PropertyController struct {
	repo *repository.PropertyRepository
}

func NewPropertyController(repo *repository.PropertyRepository) *PropertyController {
	return &PropertyController{repo: repo}
}

type PropertyInput struct {
	repository.CreatePropertyInput
	// Images carries already-hosted URLs; raw uploads go through the
	// dedicated image endpoint.
	Images []string `json:"images"`
}

// List emlak ilanlarını filtreleyerek listeler
func (pc *PropertyController) List(c *fiber.Ctx) error {
	f := parseFilterParams(c)
	if f.FavoritesOnly {
		f.FavoritesUserID = middleware.CurrentUserID(c)
	}

	result, err := pc.repo.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Get ilan detayını döndürür
func (pc *PropertyController) Get(c *fiber.Ctx) error {
	property, err := pc.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

// Create yeni emlak ilanı oluşturur
func (pc *PropertyController) Create(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	// Resim sayısı kontrolü
	if len(input.Images) > MaxPropertyImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum 16 images allowed",
		})
	}

	in := input.CreatePropertyInput
	for _, url := range input.Images {
		in.Images = append(in.Images, repository.ExistingURL(url))
	}

	property, err := pc.repo.Create(c.Context(), middleware.CurrentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

type PropertyUpdateInput struct {
	repository.UpdatePropertyInput
	Images *[]string `json:"images"`
}

// Update ilanı günceller; images alanı verilirse tüm resim seti değişir
func (pc *PropertyController) Update(c *fiber.Ctx) error {
	input := new(PropertyUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	in := input.UpdatePropertyInput
	if input.Images != nil {
		if len(*input.Images) > MaxPropertyImages {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Maximum 16 images allowed",
			})
		}
		in.Images = make([]repository.ImageSource, 0, len(*input.Images))
		for _, url := range *input.Images {
			in.Images = append(in.Images, repository.ExistingURL(url))
		}
	}

	property, err := pc.repo.Update(c.Context(), c.Params("id"), middleware.CurrentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

// Delete ilanı pasife çeker (soft delete)
func (pc *PropertyController) Delete(c *fiber.Ctx) error {
	deleted, err := pc.repo.SoftDelete(c.Context(), c.Params("id"), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// UploadImage tekil resim yükler
func (pc *PropertyController) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read file",
		})
	}

	img, err := pc.repo.AddImage(c.Context(), c.Params("id"), middleware.CurrentUserID(c),
		repository.PendingUpload(data, file.Filename, file.Header.Get("Content-Type")))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"image":   img,
	})
}

// respondError maps repository errors onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, filter.ErrValidation),
		errors.Is(err, validation.ErrFileSize),
		errors.Is(err, validation.ErrFileType),
		errors.Is(err, validation.ErrFileRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
