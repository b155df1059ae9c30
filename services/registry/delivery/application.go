package delivery

import (
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

type applicationHandler struct {
	apuc domain.ApplicationUseCase
}

func NewApplicationDelivery(app *fiber.App, uc domain.ApplicationUseCase) {
	handler := &applicationHandler{
		apuc: uc,
	}

	route := app.Group("/Application")
	route.Get("/", handler.deliveryList)
	route.Get("/Details/:id", handler.deliveryDetails)
	route.Get("/Create", handler.deliveryForm)
	route.Post("/Create", handler.deliveryCreate)
	route.Get("/NewApplication", handler.deliveryForm)
	route.Post("/NewApplication", handler.deliveryNewApplication)
	route.Get("/Edit/:id", handler.deliveryEditForm)
	route.Post("/Edit/:id", handler.deliveryEdit)
	route.Get("/Delete/:id", handler.deliveryDetails)
	route.Post("/Delete/:id", handler.deliveryDelete)
	route.Get("/SearchApplicants", handler.deliverySearchApplicants)
	route.Get("/GetExistingApplications", handler.deliveryExistingApplications)
}

func (aph *applicationHandler) deliveryList(c *fiber.Ctx) error {
	start, err := queryDate(c, "startDate", "Start Date")
	if err != nil {
		return respondError(c, "ListApplications", err)
	}
	end, err := queryDate(c, "endDate", "End Date")
	if err != nil {
		return respondError(c, "ListApplications", err)
	}

	apps, err := aph.apuc.List(c.Context(), domain.ApplicationFilter{
		SearchString:  trimmedQuery(c, "searchString"),
		OfficerFilter: trimmedQuery(c, "officerFilter"),
		ProgramFilter: trimmedQuery(c, "programFilter"),
		StartDate:     start,
		EndDate:       end,
	})
	if err != nil {
		return respondError(c, "ListApplications", err)
	}
	return respondOK(c, fiber.StatusOK, "ListApplications", "Applications retrieved successfully", apps)
}

func (aph *applicationHandler) deliveryDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "ApplicationDetails", err)
	}

	details, err := aph.apuc.Details(c.Context(), id)
	if err != nil {
		return respondError(c, "ApplicationDetails", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicationDetails", "Application retrieved successfully", details)
}

func (aph *applicationHandler) deliveryForm(c *fiber.Ctx) error {
	form, err := aph.apuc.FormData(c.Context())
	if err != nil {
		return respondError(c, "ApplicationForm", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicationForm", "Form data retrieved successfully", form)
}

func (aph *applicationHandler) deliveryCreate(c *fiber.Ctx) error {
	var in domain.ApplicationInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "CreateApplication", err)
	}

	id, err := aph.apuc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, "CreateApplication", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateApplication", "Application submitted successfully", fiber.Map{"applicationId": id})
}

func (aph *applicationHandler) deliveryNewApplication(c *fiber.Ctx) error {
	var in domain.ApplicationInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "NewApplication", err)
	}

	id, err := aph.apuc.CreateForIDNumber(c.Context(), in.ApplicantIDNumber, in)
	if err != nil {
		return respondError(c, "NewApplication", err)
	}
	return respondOK(c, fiber.StatusCreated, "NewApplication", "Application submitted successfully", fiber.Map{"applicationId": id})
}

func (aph *applicationHandler) deliveryEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "ApplicationEditForm", err)
	}

	form, err := aph.apuc.EditForm(c.Context(), id)
	if err != nil {
		return respondError(c, "ApplicationEditForm", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicationEditForm", "Application retrieved successfully", form)
}

func (aph *applicationHandler) deliveryEdit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "UpdateApplication", err)
	}
	var in domain.ApplicationInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "UpdateApplication", err)
	}

	if err := aph.apuc.Update(c.Context(), id, in); err != nil {
		return respondError(c, "UpdateApplication", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateApplication", "Application updated successfully", fiber.Map{"applicationId": id})
}

func (aph *applicationHandler) deliveryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "DeleteApplication", err)
	}

	if err := aph.apuc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteApplication", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteApplication", "Application deleted successfully", nil)
}

func (aph *applicationHandler) deliverySearchApplicants(c *fiber.Ctx) error {
	options, err := aph.apuc.SearchApplicants(c.Context(), c.Query("term"))
	if err != nil {
		return respondError(c, "SearchApplicants", err)
	}
	return respondBare(c, "SearchApplicants", options)
}

func (aph *applicationHandler) deliveryExistingApplications(c *fiber.Ctx) error {
	enrollments, err := aph.apuc.ExistingApplications(c.Context(), c.QueryInt("applicantId"))
	if err != nil {
		return respondError(c, "GetExistingApplications", err)
	}
	return respondBare(c, "GetExistingApplications", enrollments)
}
