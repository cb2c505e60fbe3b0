package sheets

import (
	"context"
	"fmt"

	googlesheets "google.golang.org/api/sheets/v4"
)

type sheets struct {
	sheetsSrv *googlesheets.Service
}

func NewClient(sheetsSrv *googlesheets.Service) *sheets {
	return &sheets{
		sheetsSrv: sheetsSrv,
	}
}

// AppendRow appends one row to the named sheet, used to log each allocation
// run on the office tracking spreadsheet.
func (s *sheets) AppendRow(ctx context.Context, spreadsheetId string, sheetName string, row []interface{}) error {
	valueRange := &googlesheets.ValueRange{
		Values: [][]interface{}{row},
	}

	response, err := s.sheetsSrv.Spreadsheets.Values.
		Append(spreadsheetId, sheetName, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return err
	}

	if response.HTTPStatusCode != 200 {
		return fmt.Errorf("unexpected status %d appending to %s", response.HTTPStatusCode, sheetName)
	}

	return nil
}
