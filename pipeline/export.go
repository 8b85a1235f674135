// Package pipeline composes the CRM client and the spreadsheet codec
// into the two sync flows: export one candidate to a file, import leads
// from a file. Both run strictly sequentially.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"candidatesync/backend/excel"
	"candidatesync/backend/models"
)

// CRM is the client surface the pipelines depend on.
type CRM interface {
	GetLead(ctx context.Context, id int) (models.CandidateRecord, error)
	AddUserField(ctx context.Context, fileName string) (int, error)
	AttachFileLink(ctx context.Context, fieldID int, filePath string, leadID int) error
	AddLead(ctx context.Context, row models.ImportRow) error
}

// ExportResult reports the two independent outcomes of an export run.
// When Run returns a nil error the file exists on disk; the link on the
// CRM record may still be missing, in which case AttachErr says why.
type ExportResult struct {
	FilePath     string
	FieldID      int
	LinkAttached bool
	AttachErr    error
}

type Exporter struct {
	crm  CRM
	dir  string
	base string
	log  *logrus.Entry
}

func NewExporter(crm CRM, dir, base string) *Exporter {
	return &Exporter{crm: crm, dir: dir, base: base, log: logrus.WithField("component", "export")}
}

// Run fetches one candidate, writes it to a workbook and attaches the
// file path to the lead under a freshly created user field. Fetch and
// encode failures abort the run before any CRM mutation; field-creation
// and attach failures leave the file on disk and are reported through
// the result instead of failing the run.
func (e *Exporter) Run(ctx context.Context, leadID int) (ExportResult, error) {
	rec, err := e.crm.GetLead(ctx, leadID)
	if err != nil {
		return ExportResult{}, err
	}
	path, err := excel.WriteCandidate(rec, e.dir, e.base)
	if err != nil {
		return ExportResult{}, err
	}
	res := ExportResult{FilePath: path}
	e.log.WithFields(logrus.Fields{"lead_id": leadID, "file": path}).Info("candidate exported")

	fieldID, err := e.crm.AddUserField(ctx, filepath.Base(path))
	if err != nil {
		e.log.WithError(err).Warn("user field not created, skipping link attach")
		res.AttachErr = err
		return res, nil
	}
	res.FieldID = fieldID

	if err := e.crm.AttachFileLink(ctx, fieldID, path, leadID); err != nil {
		e.log.WithError(err).WithField("lead_id", leadID).Warn("file link not attached")
		res.AttachErr = err
		return res, nil
	}
	res.LinkAttached = true
	return res, nil
}
