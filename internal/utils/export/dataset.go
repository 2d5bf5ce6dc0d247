// Package export renders flat record sets as downloads: JSON-per-field comma-joined text, indented JSON or XLSX.
package export

import (
	"encoding/json"
	"sort"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// Dataset is a flat table: an ordered column set and one map per record.
// Keys missing from a row export as empty cells.
type Dataset struct {
	Columns []string
	Rows    []map[string]any
}

// FromRecords builds a Dataset whose columns are the sorted keys of the first record.
func FromRecords(records []map[string]any) Dataset {
	ds := Dataset{Columns: []string{}, Rows: records}
	if len(records) == 0 {
		ds.Rows = []map[string]any{}
		return ds
	}
	for k := range records[0] {
		ds.Columns = append(ds.Columns, k)
	}
	sort.Strings(ds.Columns)
	return ds
}

// EntryColumns is the column order of an entries export.
var EntryColumns = []string{
	"id", "data", "mes", "ano", "tipo", "categoria", "responsavel",
	"descricao", "valor", "status", "tag",
}

// EntriesDataset flattens entries into an export table. Amounts keep two decimal places.
func EntriesDataset(entries []domain.Entry) Dataset {
	rows := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]any{
			"id":          e.EntryID,
			"data":        e.Date.Format("2006-01-02"),
			"mes":         e.Month,
			"ano":         e.Year,
			"tipo":        string(e.Kind),
			"categoria":   e.CategoryName,
			"responsavel": e.ResponsibleName,
			"descricao":   e.Description,
			"valor":       json.Number(e.Amount.StringFixed(2)),
			"status":      string(e.Status),
			"tag":         e.TagName,
		})
	}
	return Dataset{Columns: EntryColumns, Rows: rows}
}
