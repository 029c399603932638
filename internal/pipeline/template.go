package pipeline

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// MemberImportTemplate builds the downloadable xlsx with the exact headers
// the structured member import expects, plus one example row.
func MemberImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	headers := []string{ColEmail, ColFullName, ColHireDate, ColCategory, ColLocation, ColAvailability, ColCurrent, ColPhotoURL}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	example := []string{"jane.doe@example.com", "Jane Doe", "2023-04-01", "Builder", "Lisbon", "Available", "", ""}
	for i, v := range example {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
