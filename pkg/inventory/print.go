// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/kubereach/kubereach/pkg/textutil"
)

var FormatHelp = "\n" +
	"These functions are available to go templates:\n\n" +
	textutil.IndentString(2,
		strings.Join(textutil.FuncHelp, "\n")+"\n")

// PrintReports prints reports in a requested format to a given io.Writer.
// Supported formats are "json", "yaml", "table", or a go template.
func PrintReports(w io.Writer, reports []ServiceReport, format string) error {
	switch format {
	case "json":
		format = "{{json .}}"
	case "yaml":
		format = "{{yaml .}}"
	case "table":
		w := tabwriter.NewWriter(w, 4, 8, 4, ' ', 0)
		fmt.Fprintln(w, "NAME\tTOPOLOGY\tKIND\tURL\tPORT\tPOD\tAGE")
		for _, report := range reports {
			if len(report.Addresses) == 0 {
				// keep the service visible even when nothing reaches it
				fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\t%s\n",
					report.Name,
					report.Topology,
					textutil.MissingString("-", report.Age),
				)
				continue
			}
			for _, addr := range report.Addresses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					report.Name,
					report.Topology,
					addr.Kind,
					addr.URL(),
					addr.PortName,
					textutil.MissingString("-", addr.Pod),
					textutil.MissingString("-", report.Age),
				)
			}
		}
		return w.Flush()
	default:
		// NOP
	}
	tmpl, err := template.New("format").Funcs(textutil.TemplateFuncMap).Parse(format)
	if err != nil {
		return fmt.Errorf("invalid go template: %w", err)
	}
	for _, report := range reports {
		if err := tmpl.Execute(w, report); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
