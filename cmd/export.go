package main

import (
	"time"

	"feedaudit/internal/feed"
	"feedaudit/internal/flatten"
	"feedaudit/internal/xlsxio"
)

// runExport flattens the feed to one row per property and writes the workbook.
func runExport(doc *feed.Document, path string, truncLimit int) error {
	start := time.Now()
	rows := flatten.Rows(doc, flatten.Options{TruncateLimit: truncLimit})
	if err := xlsxio.WriteSheet(path, "Properties", flatten.Header(), rows); err != nil {
		return err
	}
	logger.Info("export written",
		"path", path,
		"rows", len(rows),
		"elapsed", time.Since(start).Truncate(time.Millisecond))
	return nil
}
