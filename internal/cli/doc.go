// Package cli implements the command-line interface for picks-scraper.
//
// The root command runs one scrape of the projection board and overwrites the
// result file, success or error. It is meant to be run from cron or a CI
// schedule with no arguments; flags only override defaults. The announce
// subcommand reads the saved result and posts the highest-confidence picks.
package cli
