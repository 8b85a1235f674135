package pipeline

import (
	"context"

	"github.com/sirupsen/logrus"

	"candidatesync/backend/excel"
)

// ImportResult aggregates one batch. Every decoded row is attempted;
// per-row failures do not stop the loop and created leads are never
// rolled back.
type ImportResult struct {
	Decoded        int `json:"decoded"`
	Created        int `json:"created"`
	SkippedInvalid int `json:"skipped_invalid"`
	Failed         int `json:"failed"`
}

type Importer struct {
	crm CRM
	log *logrus.Entry
}

func NewImporter(crm CRM) *Importer {
	return &Importer{crm: crm, log: logrus.WithField("component", "import")}
}

// Run decodes the spreadsheet at path and creates one lead per row that
// carries both title and last name. Rows missing either are skipped with
// a warning and do not count as failures.
func (im *Importer) Run(ctx context.Context, path string) (ImportResult, error) {
	rows, err := excel.ReadImportRows(path)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{Decoded: len(rows)}
	for i, row := range rows {
		if !row.Valid() {
			im.log.WithFields(logrus.Fields{"row": i + 2, "title": row.Title}).Warn("row missing required fields, skipping")
			res.SkippedInvalid++
			continue
		}
		if err := im.crm.AddLead(ctx, row); err != nil {
			im.log.WithError(err).WithField("title", row.Title).Error("lead creation failed")
			res.Failed++
			continue
		}
		res.Created++
	}
	im.log.WithFields(logrus.Fields{
		"file":    path,
		"decoded": res.Decoded,
		"created": res.Created,
		"skipped": res.SkippedInvalid,
		"failed":  res.Failed,
	}).Info("import batch finished")
	return res, nil
}
