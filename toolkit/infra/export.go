package infra

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"seokit/toolkit/domain"
)

const (
	summarySheet = "Summary"
	linksSheet   = "Backlinks"
)

// WriteBacklinksXLSX grava o relatório em duas abas (resumo e amostra).
func WriteBacklinksXLSX(w io.Writer, rep domain.BacklinkReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Domain", rep.Domain},
		{"Total backlinks", rep.Total},
		{"Dofollow", rep.DoFollow},
		{"Nofollow", rep.NoFollow},
		{"Referring domains", rep.ReferringDomains},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(linksSheet); err != nil {
		return err
	}
	header := []any{"Source URL", "Target URL", "Anchor", "Dofollow", "Authority", "First seen"}
	if err := f.SetSheetRow(linksSheet, "A1", &header); err != nil {
		return err
	}
	for i, b := range rep.Sample {
		row := []any{b.SourceURL, b.TargetURL, b.AnchorText, b.DoFollow, b.Authority, b.FirstSeen}
		if err := f.SetSheetRow(linksSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(linksSheet, "A1", "F1", bold)
		_ = f.SetCellStyle(summarySheet, "A1", "A5", bold)
	}
	_ = f.SetColWidth(linksSheet, "A", "B", 40)

	return f.Write(w)
}
