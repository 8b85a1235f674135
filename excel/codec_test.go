package excel

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"candidatesync/backend/errs"
	"candidatesync/backend/models"
)

func candidateIvan() models.CandidateRecord {
	return models.CandidateRecord{
		ID:         json.Number("123"),
		Name:       "Ivan",
		LastName:   "Ivanov",
		Phones:     []models.ContactValue{{Value: "+79991234567"}},
		Emails:     []models.ContactValue{{Value: "ivanov@example.com"}},
		DateCreate: "2023-10-01T12:00:00+0300",
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	return rows
}

func TestWriteCandidate(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteCandidate(candidateIvan(), dir, "candidates")
	if err != nil {
		t.Fatalf("WriteCandidate() error = %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "candidates_") || !strings.HasSuffix(name, ".xlsx") {
		t.Errorf("file name = %q, want candidates_{stamp}.xlsx", name)
	}

	rows := readRows(t, path)
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want header + 1 data row", len(rows))
	}
	wantHeader := []string{"ID", "Name", "LastName", "Phone", "Email", "DateCreated"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	want := []string{"123", "Ivan", "Ivanov", "+79991234567", "ivanov@example.com", "01.10.2023"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Errorf("cell[%d] = %q, want %q", i, rows[1][i], v)
		}
	}
}

func TestWriteCandidate_EmptyContacts(t *testing.T) {
	rec := candidateIvan()
	rec.Phones = nil
	rec.Emails = nil
	rec.DateCreate = ""

	path, err := WriteCandidate(rec, t.TempDir(), "candidates")
	if err != nil {
		t.Fatalf("WriteCandidate() error = %v", err)
	}
	rows := readRows(t, path)
	for _, col := range []int{3, 4, 5} {
		if rows[1][col] != NotAvailable {
			t.Errorf("cell[%d] = %q, want %q", col, rows[1][col], NotAvailable)
		}
	}
}

func TestWriteCandidate_BadDate(t *testing.T) {
	rec := candidateIvan()
	rec.DateCreate = "yesterday"

	_, err := WriteCandidate(rec, t.TempDir(), "candidates")
	if !errs.IsKind(err, errs.Decode) {
		t.Fatalf("kind = %q, want decode (err=%v)", errs.KindOf(err), err)
	}
}

func writeImportFixture(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &rows[i]); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	path := filepath.Join(t.TempDir(), "import.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return path
}

func TestReadImportRows(t *testing.T) {
	path := writeImportFixture(t, [][]any{
		{"Whatever", "The", "Header", "Says", "Here"},
		{"Title1", "Name1", "LastName1", "Phone1", "email1@example.com"},
		{"Title2", "Name2", "LastName2", "Phone2", "email2@example.com"},
	})

	rows, err := ReadImportRows(path)
	if err != nil {
		t.Fatalf("ReadImportRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	want := models.ImportRow{Title: "Title1", Name: "Name1", LastName: "LastName1", Phone: "Phone1", Email: "email1@example.com"}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
	if rows[1].Title != "Title2" {
		t.Errorf("rows[1].Title = %q, want Title2 (order must be preserved)", rows[1].Title)
	}
}

func TestReadImportRows_SkipsShortRows(t *testing.T) {
	path := writeImportFixture(t, [][]any{
		{"Title", "Name", "LastName", "Phone", "Email"},
		{"OnlyThree", "Cells", "Here"},
		{"Title2", "Name2", "LastName2", "Phone2", "email2@example.com"},
	})

	rows, err := ReadImportRows(path)
	if err != nil {
		t.Fatalf("ReadImportRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (short row skipped, scan continued)", len(rows))
	}
	if rows[0].Title != "Title2" {
		t.Errorf("rows[0].Title = %q, want Title2", rows[0].Title)
	}
}

func TestReadImportRows_MissingFile(t *testing.T) {
	_, err := ReadImportRows(filepath.Join(t.TempDir(), "absent.xlsx"))
	if !errs.IsKind(err, errs.Data) {
		t.Fatalf("kind = %q, want data (err=%v)", errs.KindOf(err), err)
	}
}

// The codec is intentionally lossy across encode/decode (schemas differ),
// but scalars written by encode must survive a positional read unchanged.
func TestEncodeScalars_SurviveDecode(t *testing.T) {
	path, err := WriteCandidate(candidateIvan(), t.TempDir(), "candidates")
	if err != nil {
		t.Fatalf("WriteCandidate() error = %v", err)
	}
	rows, err := ReadImportRows(path)
	if err != nil {
		t.Fatalf("ReadImportRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	// import schema reads positionally, so the export columns land shifted
	got := rows[0]
	if got.Title != "123" || got.Name != "Ivan" || got.LastName != "Ivanov" {
		t.Errorf("decoded = %+v", got)
	}
	if got.Phone != "+79991234567" || got.Email != "ivanov@example.com" {
		t.Errorf("decoded contacts = %q %q", got.Phone, got.Email)
	}
}
