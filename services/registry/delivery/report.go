package delivery

import (
	"fmt"

	"sais/config"
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

type reportHandler struct {
	ruc domain.ReportUseCase
}

func NewReportDelivery(app *fiber.App, uc domain.ReportUseCase) {
	handler := &reportHandler{
		ruc: uc,
	}

	route := app.Group("/Reports")
	route.Get("/", handler.deliverySummary)
	route.Get("/Applications", handler.deliveryApplications)
	route.Get("/Export", handler.deliveryExport)
}

func reportFilter(c *fiber.Ctx) (domain.ReportFilter, error) {
	start, err := queryDate(c, "startDate", "Start Date")
	if err != nil {
		return domain.ReportFilter{}, err
	}
	end, err := queryDate(c, "endDate", "End Date")
	if err != nil {
		return domain.ReportFilter{}, err
	}
	return domain.ReportFilter{
		OfficerFilter: trimmedQuery(c, "officerFilter"),
		ProgramFilter: trimmedQuery(c, "programFilter"),
		StartDate:     start,
		EndDate:       end,
	}, nil
}

func (rh *reportHandler) deliverySummary(c *fiber.Ctx) error {
	summary, err := rh.ruc.Summary(c.Context())
	if err != nil {
		return respondError(c, "ReportSummary", err)
	}
	return respondOK(c, fiber.StatusOK, "ReportSummary", "Summary retrieved successfully", summary)
}

func (rh *reportHandler) deliveryApplications(c *fiber.Ctx) error {
	filter, err := reportFilter(c)
	if err != nil {
		return respondError(c, "ApplicationsReport", err)
	}

	rows, err := rh.ruc.Applications(c.Context(), filter)
	if err != nil {
		return respondError(c, "ApplicationsReport", err)
	}
	return respondOK(c, fiber.StatusOK, "ApplicationsReport", "Report retrieved successfully", rows)
}

func (rh *reportHandler) deliveryExport(c *fiber.Ctx) error {
	format, ok := domain.ParseExportFormat(c.Query("format"))
	if !ok {
		return respondError(c, "ExportReport",
			domain.NewFieldError(domain.KindValidation, "format", domain.CodeInvalid, "Invalid export format"))
	}
	filter, err := reportFilter(c)
	if err != nil {
		return respondError(c, "ExportReport", err)
	}

	file, err := rh.ruc.Export(c.Context(), format, filter)
	if err != nil {
		return respondError(c, "ExportReport", err)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", file.FileName))
	c.Set(fiber.HeaderContentType, file.ContentType)
	config.PrintLogInfo(fiber.StatusOK, "ExportReport")
	return c.Status(fiber.StatusOK).Send(file.Body)
}
