package etl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/ucsc-xena/xena-gdc/internal/gdc"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// DefaultCasePageSize matches the page size the portal copes well with;
// larger pages make the expanded diagnosis groups slow to assemble.
const DefaultCasePageSize = 10

//counterfeiter:generate -o ./fakes/case_service.go --fake-name CaseService . CaseService
type CaseService interface {
	Cases(ctx context.Context, from, size int) (gdc.CasesPage, error)
}

// CasesExporter pages through every case on the portal and writes one
// TSV row per case: the first diagnosis record, the demographic record,
// and the project fields merged flat, keyed by case id.
type CasesExporter struct {
	Service  CaseService
	Logger   *log.Logger
	PageSize int
}

type caseRow struct {
	id     string
	record map[string]string
}

// Export streams all case pages and writes the merged table to w. The
// column set is the sorted union of every field seen; cells missing for
// a case are left empty.
func (exporter CasesExporter) Export(ctx context.Context, w io.Writer) error {
	size := exporter.PageSize
	if size <= 0 {
		size = DefaultCasePageSize
	}

	var (
		rows    []caseRow
		columns = make(map[string]struct{})
	)
	page, pages := 0, 1
	for pages > page {
		from := size*page + 1
		casesPage, err := exporter.Service.Cases(ctx, from, size)
		if err != nil {
			return fmt.Errorf("failed to fetch cases page: %w", err)
		}
		if casesPage.Page <= page {
			return fmt.Errorf("cases pagination did not advance past page %d", page)
		}
		page = casesPage.Page
		pages = casesPage.Pages
		exporter.Logger.Printf("processing page %d/%d", page, pages)

		for _, hit := range casesPage.Hits {
			row := flattenCase(hit)
			for column := range row.record {
				columns[column] = struct{}{}
			}
			rows = append(rows, row)
		}
	}

	return writeCaseTable(w, rows, sortedColumns(columns))
}

// flattenCase merges the expanded groups flat: first diagnosis, then
// demographic, then project, submitter_id last so the case's own id
// wins over any group field of that name.
func flattenCase(hit map[string]any) caseRow {
	record := make(map[string]string)
	if diagnoses, ok := hit["diagnoses"].([]any); ok && len(diagnoses) > 0 {
		if diagnosis, ok := diagnoses[0].(map[string]any); ok {
			mergeRecord(record, diagnosis)
		}
	}
	if demographic, ok := hit["demographic"].(map[string]any); ok {
		mergeRecord(record, demographic)
	}
	if project, ok := hit["project"].(map[string]any); ok {
		mergeRecord(record, project)
	}
	record["submitter_id"] = formatCaseValue(hit["submitter_id"])

	id, _ := hit["case_id"].(string)
	return caseRow{id: id, record: record}
}

func mergeRecord(record map[string]string, group map[string]any) {
	for key, value := range group {
		record[key] = formatCaseValue(value)
	}
}

func formatCaseValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func sortedColumns(set map[string]struct{}) []string {
	columns := make([]string, 0, len(set))
	for column := range set {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

func writeCaseTable(w io.Writer, rows []caseRow, columns []string) error {
	table := csv.NewWriter(w)
	table.Comma = '\t'

	header := append([]string{"_id"}, columns...)
	if err := table.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		cells := make([]string, 0, len(header))
		cells = append(cells, row.id)
		for _, column := range columns {
			cells = append(cells, row.record[column])
		}
		if err := table.Write(cells); err != nil {
			return err
		}
	}
	table.Flush()
	return table.Error()
}
