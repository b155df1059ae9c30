package delivery

import (
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

type managementHandler struct {
	guc domain.GeographyUseCase
	luc domain.LookupUseCase
}

var geoPlurals = map[domain.GeoLevel]string{
	domain.LevelCounty:      "Counties",
	domain.LevelSubCounty:   "SubCounties",
	domain.LevelLocation:    "Locations",
	domain.LevelSubLocation: "SubLocations",
	domain.LevelVillage:     "Villages",
}

var lookupPlurals = map[domain.LookupKind]string{
	domain.LookupGender:        "Genders",
	domain.LookupMaritalStatus: "MaritalStatuses",
}

func NewManagementDelivery(app *fiber.App, guc domain.GeographyUseCase, luc domain.LookupUseCase) {
	handler := &managementHandler{
		guc: guc,
		luc: luc,
	}

	route := app.Group("/Management")
	route.Get("/ManageCounty/:id", handler.deliveryManageCounty)

	for _, level := range domain.GeoLevels {
		plural := geoPlurals[level]
		route.Get("/"+plural, handler.geoList(level, plural))
		route.Get("/"+plural+"/:id", handler.geoGet(level, plural))
		route.Post("/"+plural, handler.geoCreate(level, plural))
		route.Post("/"+plural+"/Edit/:id", handler.geoUpdate(level, plural))
		route.Post("/"+plural+"/Delete/:id", handler.geoDelete(level, plural))
		route.Get("/Get"+plural+"Count", handler.geoCount(level, plural))
		if level != domain.LevelCounty {
			route.Get("/Get"+plural+"ForCounty", handler.geoForCounty(level, plural))
		}
	}

	for _, kind := range []domain.LookupKind{domain.LookupGender, domain.LookupMaritalStatus} {
		plural := lookupPlurals[kind]
		route.Get("/"+plural, handler.lookupList(kind, plural))
		route.Get("/"+plural+"/:id", handler.lookupGet(kind, plural))
		route.Post("/"+plural, handler.lookupCreate(kind, plural))
		route.Post("/"+plural+"/Edit/:id", handler.lookupUpdate(kind, plural))
		route.Post("/"+plural+"/Delete/:id", handler.lookupDelete(kind, plural))
		route.Get("/Get"+plural+"Count", handler.lookupCount(kind, plural))
	}
}

func (mh *managementHandler) deliveryManageCounty(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, "ManageCounty", err)
	}

	overview, err := mh.guc.ManageCounty(c.Context(), id)
	if err != nil {
		return respondError(c, "ManageCounty", err)
	}
	return respondOK(c, fiber.StatusOK, "ManageCounty", "County retrieved successfully", overview)
}

func (mh *managementHandler) geoList(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "List" + plural
	return func(c *fiber.Ctx) error {
		nodes, err := mh.guc.List(c.Context(), level)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, plural+" retrieved successfully", nodes)
	}
}

func (mh *managementHandler) geoGet(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "Get" + plural
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return respondError(c, fn, err)
		}

		node, err := mh.guc.Get(c.Context(), level, id)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, level.Label()+" retrieved successfully", node)
	}
}

func (mh *managementHandler) geoCreate(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "Create" + plural
	return func(c *fiber.Ctx) error {
		var in domain.GeoInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, fn, err)
		}

		id, err := mh.guc.Create(c.Context(), level, in)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusCreated, fn, level.Label()+" created successfully", fiber.Map{"id": id})
	}
}

func (mh *managementHandler) geoUpdate(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "Update" + plural
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return respondError(c, fn, err)
		}
		var in domain.GeoInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, fn, err)
		}

		if err := mh.guc.Update(c.Context(), level, id, in); err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, level.Label()+" updated successfully", fiber.Map{"id": id})
	}
}

func (mh *managementHandler) geoDelete(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "Delete" + plural
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return respondError(c, fn, err)
		}

		if err := mh.guc.Delete(c.Context(), level, id); err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, level.Label()+" deleted successfully", nil)
	}
}

func (mh *managementHandler) geoCount(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "Get" + plural + "Count"
	return func(c *fiber.Ctx) error {
		n, err := mh.guc.Count(c.Context(), level)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondBare(c, fn, n)
	}
}

func (mh *managementHandler) geoForCounty(level domain.GeoLevel, plural string) fiber.Handler {
	fn := "Get" + plural + "ForCounty"
	return func(c *fiber.Ctx) error {
		nodes, err := mh.guc.ListUnderCounty(c.Context(), level, c.QueryInt("countyId"))
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondBare(c, fn, nodes)
	}
}

func (mh *managementHandler) lookupList(kind domain.LookupKind, plural string) fiber.Handler {
	fn := "List" + plural
	return func(c *fiber.Ctx) error {
		items, err := mh.luc.List(c.Context(), kind)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, plural+" retrieved successfully", items)
	}
}

func (mh *managementHandler) lookupGet(kind domain.LookupKind, plural string) fiber.Handler {
	fn := "Get" + plural
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return respondError(c, fn, err)
		}

		item, err := mh.luc.Get(c.Context(), kind, id)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, kind.Label()+" retrieved successfully", item)
	}
}

func (mh *managementHandler) lookupCreate(kind domain.LookupKind, plural string) fiber.Handler {
	fn := "Create" + plural
	return func(c *fiber.Ctx) error {
		var in domain.LookupInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, fn, err)
		}

		id, err := mh.luc.Create(c.Context(), kind, in)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusCreated, fn, kind.Label()+" created successfully", fiber.Map{"id": id})
	}
}

func (mh *managementHandler) lookupUpdate(kind domain.LookupKind, plural string) fiber.Handler {
	fn := "Update" + plural
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return respondError(c, fn, err)
		}
		var in domain.LookupInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, fn, err)
		}

		if err := mh.luc.Update(c.Context(), kind, id, in); err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, kind.Label()+" updated successfully", fiber.Map{"id": id})
	}
}

func (mh *managementHandler) lookupDelete(kind domain.LookupKind, plural string) fiber.Handler {
	fn := "Delete" + plural
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return respondError(c, fn, err)
		}

		if err := mh.luc.Delete(c.Context(), kind, id); err != nil {
			return respondError(c, fn, err)
		}
		return respondOK(c, fiber.StatusOK, fn, kind.Label()+" deleted successfully", nil)
	}
}

func (mh *managementHandler) lookupCount(kind domain.LookupKind, plural string) fiber.Handler {
	fn := "Get" + plural + "Count"
	return func(c *fiber.Ctx) error {
		n, err := mh.luc.Count(c.Context(), kind)
		if err != nil {
			return respondError(c, fn, err)
		}
		return respondBare(c, fn, n)
	}
}
