package delivery

import (
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

type officerHandler struct {
	luc domain.LookupUseCase
}

func NewOfficerDelivery(app *fiber.App, uc domain.LookupUseCase) {
	handler := &officerHandler{
		luc: uc,
	}

	route := app.Group("/Officer")
	route.Get("/", handler.deliveryList)
	route.Get("/Details/:id", handler.deliveryDetails)
	route.Get("/Create", handler.deliveryCreateForm)
	route.Post("/Create", handler.deliveryCreate)
	route.Get("/Edit/:id", handler.deliveryGet)
	route.Post("/Edit/:id", handler.deliveryEdit)
	route.Get("/Delete/:id", handler.deliveryDetails)
	route.Post("/Delete/:id", handler.deliveryDelete)
}

func (oh *officerHandler) deliveryList(c *fiber.Ctx) error {
	officers, err := oh.luc.ListOfficers(c.Context())
	if err != nil {
		return respondError(c, "ListOfficers", err)
	}
	return respondOK(c, fiber.StatusOK, "ListOfficers", "Officers retrieved successfully", officers)
}

func (oh *officerHandler) deliveryDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "OfficerDetails", err)
	}

	details, err := oh.luc.OfficerDetails(c.Context(), id)
	if err != nil {
		return respondError(c, "OfficerDetails", err)
	}
	return respondOK(c, fiber.StatusOK, "OfficerDetails", "Officer retrieved successfully", details)
}

func (oh *officerHandler) deliveryCreateForm(c *fiber.Ctx) error {
	return respondOK(c, fiber.StatusOK, "OfficerCreateForm", "Form data retrieved successfully", domain.OfficerInput{})
}

func (oh *officerHandler) deliveryCreate(c *fiber.Ctx) error {
	var in domain.OfficerInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "CreateOfficer", err)
	}

	id, err := oh.luc.CreateOfficer(c.Context(), in)
	if err != nil {
		return respondError(c, "CreateOfficer", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateOfficer", "Officer created successfully", fiber.Map{"officerId": id})
}

func (oh *officerHandler) deliveryGet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "GetOfficer", err)
	}

	officer, err := oh.luc.GetOfficer(c.Context(), id)
	if err != nil {
		return respondError(c, "GetOfficer", err)
	}
	return respondOK(c, fiber.StatusOK, "GetOfficer", "Officer retrieved successfully", officer)
}

func (oh *officerHandler) deliveryEdit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "UpdateOfficer", err)
	}
	var in domain.OfficerInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "UpdateOfficer", err)
	}

	if err := oh.luc.UpdateOfficer(c.Context(), id, in); err != nil {
		return respondError(c, "UpdateOfficer", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateOfficer", "Officer updated successfully", fiber.Map{"officerId": id})
}

func (oh *officerHandler) deliveryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "DeleteOfficer", err)
	}

	if err := oh.luc.DeleteOfficer(c.Context(), id); err != nil {
		return respondError(c, "DeleteOfficer", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteOfficer", "Officer deleted successfully", nil)
}
