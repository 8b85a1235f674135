// Package excel encodes one candidate record into an xlsx workbook and
// decodes a workbook into import rows.
package excel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"candidatesync/backend/errs"
	"candidatesync/backend/models"
)

const (
	sheetName = "Candidates"

	// NotAvailable fills an export cell whose source value is absent.
	NotAvailable = "N/A"

	// DATE_CREATE arrives with a numeric offset without a colon.
	crmDateLayout  = "2006-01-02T15:04:05-0700"
	cellDateLayout = "02.01.2006"
	stampLayout    = "20060102_1504"
)

var exportHeader = []any{"ID", "Name", "LastName", "Phone", "Email", "DateCreated"}

// WriteCandidate writes rec as a single-row workbook under dir and
// returns the file path. The file is named {base}_{YYYYMMDD_HHMM}.xlsx,
// so two exports within the same minute with the same base silently
// overwrite each other.
func WriteCandidate(rec models.CandidateRecord, dir, base string) (string, error) {
	const op = "excel.WriteCandidate"

	created := NotAvailable
	if rec.DateCreate != "" {
		t, err := time.Parse(crmDateLayout, rec.DateCreate)
		if err != nil {
			return "", errs.E(errs.Decode, op, err)
		}
		created = t.Format(cellDateLayout)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", errs.E(errs.Decode, op, err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeader); err != nil {
		return "", errs.E(errs.Decode, op, err)
	}
	if style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "F1", style)
	}

	row := []any{
		orMarker(rec.ID.String()),
		orMarker(rec.Name),
		orMarker(rec.LastName),
		firstValue(rec.Phones),
		firstValue(rec.Emails),
		created,
	}
	if err := f.SetSheetRow(sheetName, "A2", &row); err != nil {
		return "", errs.E(errs.Decode, op, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", base, time.Now().Format(stampLayout)))
	if err := f.SaveAs(path); err != nil {
		return "", errs.E(errs.Transport, op, err)
	}
	logrus.WithFields(logrus.Fields{"component": "excel", "file": path}).Info("candidate data saved")
	return path, nil
}

// ReadImportRows decodes the first sheet of the workbook at path into
// import rows. The first row is taken to be a header and skipped; data
// rows are read positionally, first five cells, regardless of what the
// header says. Rows with fewer than five populated columns are skipped
// with a warning and do not abort the scan.
func ReadImportRows(path string) ([]models.ImportRow, error) {
	const op = "excel.ReadImportRows"
	log := logrus.WithField("component", "excel")

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.E(errs.Data, op, err)
		}
		return nil, errs.E(errs.Decode, op, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errs.Errorf(errs.Decode, op, "workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errs.E(errs.Decode, op, err)
	}

	out := []models.ImportRow{}
	for i, cells := range rows {
		if i == 0 {
			continue // header
		}
		if len(cells) < 5 {
			log.WithFields(logrus.Fields{"file": path, "row": i + 1}).Warn("row has insufficient columns, skipping")
			continue
		}
		out = append(out, models.ImportRow{
			Title:    cells[0],
			Name:     cells[1],
			LastName: cells[2],
			Phone:    cells[3],
			Email:    cells[4],
		})
	}
	log.WithFields(logrus.Fields{"file": path, "rows": len(out)}).Info("spreadsheet decoded")
	return out, nil
}

func orMarker(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func firstValue(list []models.ContactValue) string {
	if len(list) == 0 {
		return NotAvailable
	}
	return list[0].Value
}
