package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/sqlite"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set BULLETIN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	svc := sqlite.NewRecordService(db)

	filter := bulletin.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Region != "" {
		filter.Region = &c.Region
	}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	if c.Delete {
		n, err := svc.DeleteRecords(deps.Ctx, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted %d records\n", n)
		return nil
	}

	records, err := svc.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'bulletin crawl --db' to collect some.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Region, r.Category, r.Title, r.SourceURL)
	}
	return tw.Flush()
}
