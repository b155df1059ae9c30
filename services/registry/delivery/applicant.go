package delivery

import (
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

type applicantHandler struct {
	auc domain.ApplicantUseCase
	guc domain.GeographyUseCase
}

func NewApplicantDelivery(app *fiber.App, uc domain.ApplicantUseCase, guc domain.GeographyUseCase) {
	handler := &applicantHandler{
		auc: uc,
		guc: guc,
	}

	route := app.Group("/Applicant")
	route.Get("/", handler.deliveryList)
	route.Get("/Details/:id", handler.deliveryDetails)
	route.Get("/Create", handler.deliveryCreateForm)
	route.Post("/Create", handler.deliveryCreate)
	route.Get("/Edit/:id", handler.deliveryEditForm)
	route.Post("/Edit/:id", handler.deliveryEdit)
	route.Get("/Delete/:id", handler.deliveryDetails)
	route.Post("/Delete/:id", handler.deliveryDelete)
	route.Get("/Lookup", handler.deliveryLookup)
	route.Get("/RegisterAndApply", handler.deliveryRegisterAndApplyForm)
	route.Post("/RegisterAndApply", handler.deliveryRegisterAndApply)

	route.Get("/GetCounties", handler.options(domain.LevelCounty, ""))
	route.Get("/GetSubCounties", handler.options(domain.LevelSubCounty, "countyId"))
	route.Get("/GetLocations", handler.options(domain.LevelLocation, "subCountyId"))
	route.Get("/GetSubLocations", handler.options(domain.LevelSubLocation, "locationId"))
	route.Get("/GetVillages", handler.options(domain.LevelVillage, "subLocationId"))
}

func (ah *applicantHandler) deliveryList(c *fiber.Ctx) error {
	filter := domain.ApplicantFilter{
		SearchString: trimmedQuery(c, "searchString"),
		CountyFilter: trimmedQuery(c, "countyFilter"),
	}

	applicants, err := ah.auc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, "ListApplicants", err)
	}
	return respondOK(c, fiber.StatusOK, "ListApplicants", "Applicants retrieved successfully", applicants)
}

func (ah *applicantHandler) deliveryDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "ApplicantDetails", err)
	}

	profile, err := ah.auc.Details(c.Context(), id)
	if err != nil {
		return respondError(c, "ApplicantDetails", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicantDetails", "Applicant retrieved successfully", profile)
}

func (ah *applicantHandler) deliveryCreateForm(c *fiber.Ctx) error {
	form, err := ah.auc.FormData(c.Context(), false)
	if err != nil {
		return respondError(c, "ApplicantCreateForm", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicantCreateForm", "Form data retrieved successfully", form)
}

func (ah *applicantHandler) deliveryCreate(c *fiber.Ctx) error {
	var in domain.ApplicantInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "CreateApplicant", err)
	}

	id, err := ah.auc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, "CreateApplicant", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateApplicant", "Applicant registered successfully", fiber.Map{"applicantId": id})
}

func (ah *applicantHandler) deliveryEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "ApplicantEditForm", err)
	}

	form, err := ah.auc.EditForm(c.Context(), id)
	if err != nil {
		return respondError(c, "ApplicantEditForm", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicantEditForm", "Applicant retrieved successfully", form)
}

func (ah *applicantHandler) deliveryEdit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "UpdateApplicant", err)
	}
	var in domain.ApplicantInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "UpdateApplicant", err)
	}

	if err := ah.auc.Update(c.Context(), id, in); err != nil {
		return respondError(c, "UpdateApplicant", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateApplicant", "Applicant updated successfully", fiber.Map{"applicantId": id})
}

func (ah *applicantHandler) deliveryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "DeleteApplicant", err)
	}

	if err := ah.auc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteApplicant", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteApplicant", "Applicant deleted successfully", nil)
}

type lookupResult struct {
	Found bool `json:"found"`
	*domain.ApplicantProfile
}

func (ah *applicantHandler) deliveryLookup(c *fiber.Ctx) error {
	profile, err := ah.auc.Lookup(c.Context(), c.Query("idNumber"))
	if err != nil {
		if k := domain.KindOf(err); k == domain.KindNotFound || k == domain.KindValidation {
			return respondBare(c, "LookupApplicant", lookupResult{Found: false})
		}
		return respondError(c, "LookupApplicant", err)
	}
	return respondBare(c, "LookupApplicant", lookupResult{Found: true, ApplicantProfile: profile})
}

func (ah *applicantHandler) deliveryRegisterAndApplyForm(c *fiber.Ctx) error {
	form, err := ah.auc.FormData(c.Context(), true)
	if err != nil {
		return respondError(c, "RegisterAndApplyForm", err)
	}
	return respondOK(c, fiber.StatusOK, "RegisterAndApplyForm", "Form data retrieved successfully", form)
}

func (ah *applicantHandler) deliveryRegisterAndApply(c *fiber.Ctx) error {
	var in domain.RegisterAndApplyInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "RegisterAndApply", err)
	}

	result, err := ah.auc.RegisterAndApply(c.Context(), in)
	if err != nil {
		return respondError(c, "RegisterAndApply", err)
	}
	return respondOK(c, fiber.StatusCreated, "RegisterAndApply", "Applicant registered and application submitted successfully", result)
}

// options serves one level of the cascading location dropdowns.
func (ah *applicantHandler) options(level domain.GeoLevel, parentKey string) fiber.Handler {
	functionName := "Options:" + string(level)
	return func(c *fiber.Ctx) error {
		parentID := 0
		if parentKey != "" {
			parentID = c.QueryInt(parentKey)
		}

		options, err := ah.guc.Options(c.Context(), level, parentID)
		if err != nil {
			return respondError(c, functionName, err)
		}
		return respondBare(c, functionName, options)
	}
}
