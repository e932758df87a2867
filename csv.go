package metagen

import (
	"encoding/csv"
	"io"
)

// csvHeader is the column order for exported result sets.
var csvHeader = []string{"url", "page_title", "meta_description", "og_title", "og_description", "status", "error"}

// WriteCSV writes results as CSV in input order. Error rows keep their
// metadata cells empty so operators can spot inputs needing follow-up.
func WriteCSV(w io.Writer, results []*MetadataResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			r.URL,
			r.PageTitle,
			r.MetaDescription,
			r.OGTitle,
			r.OGDescription,
			r.Status,
			r.Error,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
