package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, s := range deps.Config.Sites {
		fmt.Fprintf(tw, "%s\t%s\t%d lists\t%d pages\n", s.Name, s.Region, len(s.Lists), len(s.Details))
	}
	return tw.Flush()
}
