package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"kejani_backend/internal/middleware"
	"kejani_backend/internal/repository"
)

type ProfileController struct {
	repo *repository.ProfileRepository
}

func NewProfileController(repo *repository.ProfileRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

// Get profil bilgilerini döndürür (ilk erişimde oluşturur)
func (pc *ProfileController) Get(c *fiber.Ctx) error {
	profile, err := pc.repo.Get(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// Update profil bilgilerini günceller
func (pc *ProfileController) Update(c *fiber.Ctx) error {
	input := new(repository.UpdateProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	profile, err := pc.repo.Update(c.Context(), middleware.CurrentUserID(c), *input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UploadAvatar avatar yükler, eskisini siler
func (pc *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
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

	url, err := pc.repo.UploadAvatar(c.Context(), middleware.CurrentUserID(c),
		data, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Avatar uploaded successfully",
		"avatar_url": url,
	})
}
