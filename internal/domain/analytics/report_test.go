package analytics

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReportEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, FilterSpec{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if !strings.Contains(buf.String(), "%%EOF") {
		t.Error("document missing trailer")
	}
}

func TestWriteReportWithRows(t *testing.T) {
	rows := []ExportRow{
		{Date: mustDate(t, "2024-01-15"), BCVA: 0.3, Injections: 2, Age: 68, Diagnosis: "wet AMD"},
		{Date: mustDate(t, "2024-02-15"), BCVA: 0.4, Injections: 3, Age: 68, Diagnosis: "wet AMD"},
	}
	var buf bytes.Buffer
	f, err := NormalizeFilter(RawFilter{Diagnosis: "wet AMD"})
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteReport(&buf, f, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if buf.Len() < 500 {
		t.Errorf("document suspiciously small: %d bytes", buf.Len())
	}
}

func TestWriteReportManyRowsPaginates(t *testing.T) {
	// Enough rows to overflow the first page; the document must still be
	// well formed and larger than the single-page version.
	rows := make([]ExportRow, 120)
	for i := range rows {
		rows[i] = ExportRow{Date: mustDate(t, "2024-06-01"), BCVA: 0.5, Injections: 1, Age: 70, Diagnosis: "DME"}
	}

	var single, multi bytes.Buffer
	if err := WriteReport(&single, FilterSpec{}, rows[:5]); err != nil {
		t.Fatal(err)
	}
	if err := WriteReport(&multi, FilterSpec{}, rows); err != nil {
		t.Fatal(err)
	}
	if multi.Len() <= single.Len() {
		t.Errorf("120-row report (%d bytes) not larger than 5-row report (%d bytes)", multi.Len(), single.Len())
	}
	if !strings.Contains(multi.String(), "%%EOF") {
		t.Error("document missing trailer")
	}
}
