package controller

import (
	"github.com/gofiber/fiber/v2"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/repository"
	"kejani_backend/pkg/pagination"
	"kejani_backend/pkg/sample"
)

// SampleController serves the built-in demo listings without a
// database, for frontends pointed at an empty environment. The same
// filter semantics apply as on the real listing endpoint.
type SampleController struct{}

func NewSampleController() *SampleController {
	return &SampleController{}
}

func (sc *SampleController) List(c *fiber.Ctx) error {
	f := parseFilterParams(c)
	f.Normalize()
	if err := f.Validate(); err != nil {
		return respondError(c, err)
	}

	page, total := filter.Apply(sample.Properties(), f)
	return c.JSON(repository.PropertyList{
		Data:       page,
		Total:      int64(total),
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: pagination.TotalPages(int64(total), f.Limit),
	})
}
