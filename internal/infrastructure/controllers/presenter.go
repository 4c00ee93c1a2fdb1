package controllers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depcheck/config"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

const yamlIndent = 2

// renderReport writes the analysis in the requested format.
func renderReport(w io.Writer, format string, report *entities.AnalysisReport) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(report.Result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)
		if err := encoder.Encode(report.Result); err != nil {
			return fmt.Errorf("failed to encode result as YAML: %w", err)
		}
		return encoder.Close()

	default:
		return renderText(w, report)
	}
}

func renderText(w io.Writer, report *entities.AnalysisReport) error {
	result := report.Result

	if !result.HasUnused() {
		_, err := color.New(color.FgGreen).Fprintln(w, "✓ No unused dependencies found!")
		if err != nil {
			return err
		}
		return renderScanSummary(w, report)
	}

	if _, err := color.New(color.FgYellow).Fprintf(
		w, "Found %d unused dependencies:\n", len(result.Unused),
	); err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Package"})
	for i, dep := range result.Unused {
		tw.AppendRow(table.Row{i + 1, dep})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d/%d", len(result.Unused), result.Total)})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}
	return renderScanSummary(w, report)
}

func renderScanSummary(w io.Writer, report *entities.AnalysisReport) error {
	_, err := color.New(color.Faint).Fprintf(
		w,
		"Scanned %s source files (%s), %d of %d dependencies referenced\n",
		humanize.Comma(int64(report.FilesScanned)),
		humanize.Bytes(uint64(report.BytesScanned)), //nolint:gosec // byte counts are never negative
		len(report.Result.Used),
		report.Result.Total,
	)
	return err
}
