package delivery

import (
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

type programHandler struct {
	luc domain.LookupUseCase
}

func NewProgramDelivery(app *fiber.App, uc domain.LookupUseCase) {
	handler := &programHandler{
		luc: uc,
	}

	route := app.Group("/SocialAssistanceProgram")
	route.Get("/", handler.deliveryList)
	route.Get("/Details/:id", handler.deliveryDetails)
	route.Get("/Create", handler.deliveryCreateForm)
	route.Post("/Create", handler.deliveryCreate)
	route.Get("/Edit/:id", handler.deliveryGet)
	route.Post("/Edit/:id", handler.deliveryEdit)
	route.Get("/Delete/:id", handler.deliveryDetails)
	route.Post("/Delete/:id", handler.deliveryDelete)
}

func (ph *programHandler) deliveryList(c *fiber.Ctx) error {
	programs, err := ph.luc.List(c.Context(), domain.LookupProgram)
	if err != nil {
		return respondError(c, "ListPrograms", err)
	}
	return respondOK(c, fiber.StatusOK, "ListPrograms", "Programs retrieved successfully", programs)
}

func (ph *programHandler) deliveryDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "ProgramDetails", err)
	}

	details, err := ph.luc.ProgramDetails(c.Context(), id)
	if err != nil {
		return respondError(c, "ProgramDetails", err)
	}
	return respondOK(c, fiber.StatusOK, "ProgramDetails", "Program retrieved successfully", details)
}

func (ph *programHandler) deliveryCreateForm(c *fiber.Ctx) error {
	return respondOK(c, fiber.StatusOK, "ProgramCreateForm", "Form data retrieved successfully", domain.LookupInput{})
}

func (ph *programHandler) deliveryCreate(c *fiber.Ctx) error {
	var in domain.LookupInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "CreateProgram", err)
	}

	id, err := ph.luc.Create(c.Context(), domain.LookupProgram, in)
	if err != nil {
		return respondError(c, "CreateProgram", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateProgram", "Program created successfully", fiber.Map{"programId": id})
}

func (ph *programHandler) deliveryGet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "GetProgram", err)
	}

	program, err := ph.luc.Get(c.Context(), domain.LookupProgram, id)
	if err != nil {
		return respondError(c, "GetProgram", err)
	}
	return respondOK(c, fiber.StatusOK, "GetProgram", "Program retrieved successfully", program)
}

func (ph *programHandler) deliveryEdit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "UpdateProgram", err)
	}
	var in domain.LookupInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "UpdateProgram", err)
	}

	if err := ph.luc.Update(c.Context(), domain.LookupProgram, id, in); err != nil {
		return respondError(c, "UpdateProgram", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateProgram", "Program updated successfully", fiber.Map{"programId": id})
}

func (ph *programHandler) deliveryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "DeleteProgram", err)
	}

	if err := ph.luc.Delete(c.Context(), domain.LookupProgram, id); err != nil {
		return respondError(c, "DeleteProgram", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteProgram", "Program deleted successfully", nil)
}
