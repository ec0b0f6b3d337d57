package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of a workbook written by WriteXLSX.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one worksheet: a title row, label/value metadata, then a table.
type Sheet struct {
	Name    string
	Title   string
	Meta    [][2]string
	Headers []string
	Rows    [][]interface{}
	Footer  [][2]string
}

// WriteXLSX renders the sheets into a single workbook. The first sheet is active.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("export: no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("export: create header style: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("export: create title style: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("export: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("export: add sheet %s: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet, headerStyle, titleStyle); err != nil {
			return fmt.Errorf("export: sheet %s: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle, titleStyle int) error {
	row := 1

	if sheet.Title != "" {
		if err := f.SetCellValue(sheet.Name, "A1", sheet.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", "A1", titleStyle); err != nil {
			return err
		}
		row += 2
	}

	for _, kv := range sheet.Meta {
		if err := setRow(f, sheet.Name, row, []interface{}{kv[0], kv[1]}); err != nil {
			return err
		}
		row++
	}
	if len(sheet.Meta) > 0 {
		row++
	}

	if len(sheet.Headers) > 0 {
		headers := make([]interface{}, len(sheet.Headers))
		for i, h := range sheet.Headers {
			headers[i] = h
		}
		if err := setRow(f, sheet.Name, row, headers); err != nil {
			return err
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err := f.SetCellStyle(sheet.Name, first, last, headerStyle); err != nil {
			return err
		}
		lastCol, _ := excelize.ColumnNumberToName(len(headers))
		if err := f.SetColWidth(sheet.Name, "A", lastCol, 16); err != nil {
			return err
		}
		row++
	}

	for _, values := range sheet.Rows {
		if err := setRow(f, sheet.Name, row, values); err != nil {
			return err
		}
		row++
	}

	if len(sheet.Footer) > 0 {
		row++
		for _, kv := range sheet.Footer {
			if err := setRow(f, sheet.Name, row, []interface{}{kv[0], kv[1]}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
