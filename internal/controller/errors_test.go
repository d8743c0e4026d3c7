package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/repository"
	"kejani_backend/pkg/utils/validation"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", repository.ErrUnauthenticated, fiber.StatusUnauthorized},
		{"not found", repository.ErrNotFound, fiber.StatusNotFound},
		{"validation", fmt.Errorf("%w: page must be >= 1", filter.ErrValidation), fiber.StatusBadRequest},
		{"file too big", fmt.Errorf("%w (6291457 bytes)", validation.ErrFileSize), fiber.StatusBadRequest},
		{"wrong file type", validation.ErrFileType, fiber.StatusBadRequest},
		{"anything else", fmt.Errorf("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
