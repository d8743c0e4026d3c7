package controller

import (
	"github.com/gofiber/fiber/v2"

	"kejani_backend/internal/middleware"
	"kejani_backend/internal/repository"
)

type FavoriteController struct {
	repo *repository.PropertyRepository
}

func NewFavoriteController(repo *repository.PropertyRepository) *FavoriteController {
	return &FavoriteController{repo: repo}
}

// Toggle favori durumunu değiştirir
func (fc *FavoriteController) Toggle(c *fiber.Ctx) error {
	isFavorite, err := fc.repo.ToggleFavorite(c.Context(), middleware.CurrentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"is_favorite": isFavorite})
}

// IsFavorited tekil favori kontrolü
func (fc *FavoriteController) IsFavorited(c *fiber.Ctx) error {
	isFavorite, err := fc.repo.IsFavorited(c.Context(), middleware.CurrentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"is_favorite": isFavorite})
}

// ListIDs kullanıcının favori ilan id'lerini döndürür
func (fc *FavoriteController) ListIDs(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		return respondError(c, repository.ErrUnauthenticated)
	}

	ids, err := fc.repo.ListFavoriteIDs(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(fiber.Map{"favorites": ids})
}
