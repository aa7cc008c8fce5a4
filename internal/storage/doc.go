// Package storage persists scrape results as a single JSON file.
//
// The file is the whole contract with downstream consumers: it is fully
// overwritten after every run, success or error, and always contains one
// pretty-printed result document. The default location is picks.json in the
// working directory.
package storage
