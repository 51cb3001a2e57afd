package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bulletin"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *bulletin.Config

	Fetcher     bulletin.Fetcher
	RetryDelays []time.Duration
	RateLimit   float64
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" env:"BULLETIN_CONFIG" help:"YAML file extending the built-in rules and sites"`
	Verbose bool   `short:"v" help:"Log every request and extraction step"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl sites and save their records"`
	Parse   ParseCmd   `cmd:"" help:"Extract records from a local text or HTML file"`
	Sites   SitesCmd   `cmd:"" help:"List configured sites"`
	Records RecordsCmd `cmd:"" help:"Query records stored in the database"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Sites       []string      `arg:"" optional:"" help:"Site names to crawl (default: all)"`
	Out         string        `short:"o" type:"path" default:"out" env:"BULLETIN_OUT" help:"Output directory"`
	Name        string        `short:"n" help:"Base name for output files (default: site name)"`
	Format      []string      `short:"f" default:"csv,json" help:"Output formats: csv, json, xlsx"`
	DB          string        `type:"path" env:"BULLETIN_DB" help:"SQLite database that accumulates records across runs"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent page fetch limit"`
	Timeout     time.Duration `short:"t" default:"15s" help:"Fetch timeout per page"`
	MaxPages    int           `help:"Override the list page limit of every site"`
	Browser     bool          `short:"b" help:"Render pages in a headless browser"`
	WaitFor     string        `name:"wait-for" help:"With --browser, wait for this CSS selector before reading a page"`
	Markdown    bool          `help:"Convert content through Markdown before splitting lines"`
	Extractor   string        `default:"none" enum:"none,trafilatura,readability" help:"Content extractor used when no content selector matches"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" type:"existingfile" help:"Text or HTML file to parse"`
	HTML     bool   `help:"Treat the file as an HTML page"`
	Site     string `short:"s" help:"Render HTML with this site's profile"`
	Title    string `help:"Page heading used for the fallback item"`
	URL      string `help:"Source URL stored on every record"`
	Region   string `help:"Region stored on every record"`
	Category string `help:"Category stored on every record"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	DB     string `required:"" type:"path" env:"BULLETIN_DB" help:"SQLite database path"`
	Region string `short:"r" help:"Only records of this region"`
	URL    string `help:"Only records from this source URL"`
	Limit  int    `short:"l" help:"Maximum number of records"`
	Offset int    `help:"Number of records to skip"`
	Delete bool   `help:"Delete matching records instead of listing them"`
}
