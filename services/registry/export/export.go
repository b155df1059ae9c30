// Package export renders report rows as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"strings"
	"time"

	"sais/domain"

	"github.com/xuri/excelize/v2"
)

var headers = []string{
	"Application Date",
	"Applicant Name",
	"ID Number",
	"Gender",
	"Marital Status",
	"County",
	"Officer",
	"Programs",
	"Status",
}

func record(row domain.ReportRow, programSep string) []string {
	return []string{
		row.ApplicationDate.String(),
		row.ApplicantName,
		row.IDNumber,
		row.GenderName,
		row.MaritalStatusName,
		row.CountyName,
		row.OfficerName,
		strings.Join(row.Programs, programSep),
		string(row.Status),
	}
}

// FileName returns applications_report_YYYYMMDD.<ext> for the given day.
func FileName(format domain.ExportFormat, day time.Time) string {
	return fmt.Sprintf("applications_report_%s.%s", day.Format("20060102"), format)
}

func ContentType(format domain.ExportFormat) string {
	switch format {
	case domain.ExportCSV:
		return "text/csv"
	case domain.ExportHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

// Render encodes rows in the requested format. generated stamps the HTML heading.
func Render(format domain.ExportFormat, rows []domain.ReportRow, generated time.Time) ([]byte, error) {
	switch format {
	case domain.ExportCSV:
		return CSV(rows)
	case domain.ExportHTML:
		return HTML(rows, generated)
	case domain.ExportXLSX:
		return XLSX(rows)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

func CSV(rows []domain.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(record(row, "; ")); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Applications Report</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 8px; }
th { background: #eee; }
</style>
</head>
<body>
<h1>Applications Report</h1>
<p>Generated {{.Generated}}</p>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

func HTML(rows []domain.ReportRow, generated time.Time) ([]byte, error) {
	data := struct {
		Generated string
		Headers   []string
		Rows      [][]string
	}{
		Generated: generated.Format("02/01/2006 15:04"),
		Headers:   headers,
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, record(row, ", "))
	}

	var buf bytes.Buffer
	if err := htmlReport.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

const sheetName = "Applications"

func XLSX(rows []domain.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for r, row := range rows {
		for col, v := range record(row, ", ") {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetColWidth(sheetName, "A", "I", 20); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
