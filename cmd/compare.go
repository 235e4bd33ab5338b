package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"feedaudit/internal/feed"
	"feedaudit/internal/reconcile"
	"feedaudit/internal/xlsxio"
)

// runCompare reconciles the feed against a supplied reference workbook and
// prints both directions of the mismatch.
func runCompare(doc *feed.Document, path string) error {
	header, rows, err := xlsxio.ReadSheet(path)
	if err != nil {
		return err
	}
	supplied, err := reconcile.FromTable(header, rows)
	if err != nil {
		return fmt.Errorf("workbook %s: %w", path, err)
	}
	logger.Info("reference workbook loaded", "path", path, "rows", len(supplied))

	res := reconcile.Run(doc, supplied)

	fmt.Printf("\nSupplied references missing or duplicated in the feed: %d\n", len(res.Supplied))
	if len(res.Supplied) == 0 {
		fmt.Println("All supplied references appear exactly once in the feed.")
	} else {
		table := tablewriter.NewTable(os.Stdout)
		table.Header(reconcile.RefColumn, "Issue", reconcile.URLColumn,
			reconcile.SaleStatusColumn, reconcile.DateCreatedColumn, reconcile.DateEditedColumn)
		for _, a := range res.Supplied {
			if err := table.Append(a.Ref, a.Issue, a.URL, a.SaleStatus, a.DateCreated, a.DateLastEdited); err != nil {
				return fmt.Errorf("build anomaly table: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("render anomaly table: %w", err)
		}
	}

	fmt.Printf("\nFeed references not in the supplied workbook: %d\n", len(res.DocumentOnly))
	if len(res.DocumentOnly) == 0 {
		fmt.Println("Every feed reference is covered by the supplied workbook.")
		return nil
	}
	table := tablewriter.NewTable(os.Stdout)
	table.Header("External reference", "Sales status")
	for _, d := range res.DocumentOnly {
		if err := table.Append(d.Ref, d.SalesStatus); err != nil {
			return fmt.Errorf("build feed-only table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render feed-only table: %w", err)
	}
	return nil
}
