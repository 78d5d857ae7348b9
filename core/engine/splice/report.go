/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package splice

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/slicingmelon/urisplice/core/utils/helpers"
)

const maxCellLen = 96

func cell(s string) string {
	return helpers.LimitStringWithSuffix(helpers.SanitizeString(s), maxCellLen)
}

func renderTable(data pterm.TableData) (string, error) {
	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data)

	tableStr, err := table.Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render table: %v", err)
	}
	return tableStr, nil
}

// RenderInspection renders every component of an inspection, followed by
// the query mapping, as a boxed table.
func RenderInspection(in *Inspection) (string, error) {
	data := pterm.TableData{{"Component", "Value", "Status"}}

	for _, cv := range in.Components {
		status := "present"
		switch {
		case cv.Err != nil:
			status = "malformed"
		case !cv.Present:
			status = "absent"
		}
		data = append(data, []string{cv.Component.String(), cell(cv.Value), status})
	}

	if in.QueryErr != nil {
		data = append(data, []string{"query params", cell(in.QueryErr.Error()), "malformed"})
	} else {
		keys := make([]string, 0, len(in.Query))
		for k := range in.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			data = append(data, []string{"query param", cell(k + "=" + in.Query[k]), "present"})
		}
	}

	valid := "valid"
	if !in.Valid {
		valid = "invalid"
	}
	data = append(data, []string{"rfc3986", cell(errText(in.ValidErr)), valid})

	return renderTable(data)
}

// RenderResults renders the input and output of every result in input order.
func RenderResults(results []*Result) (string, error) {
	data := pterm.TableData{{"#", "Input", "Output", "Error"}}
	for _, res := range results {
		data = append(data, []string{
			fmt.Sprint(res.Index + 1),
			cell(res.Input),
			cell(res.Output),
			cell(errText(res.Err)),
		})
	}
	return renderTable(data)
}

// RenderErrorStats renders the failure counts, or "" when nothing failed.
func RenderErrorStats(stats *ErrorStats) (string, error) {
	if stats.Total() == 0 {
		return "", nil
	}
	return renderTable(stats.Rows())
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
