package scrape

import (
	"encoding/csv"
	"io"

	"podscrape/internal/app/model"
)

// WriteCSV serializes the records to w with the fixed 9-column
// header. Records with no resolved field at all are filtered out;
// partially resolved records are written with their absent fields
// empty.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.Header()); err != nil {
		return err
	}
	for _, r := range records {
		if r.Empty() {
			continue
		}
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
