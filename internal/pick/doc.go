// Package pick defines the pick records and result documents written by the scraper.
//
// A Pick is synthesized from one scraped projection card. Its confidence, direction
// and expected value are placeholders derived from a stable SHA1-based hash of the
// card text, not from any statistical model. A Result is the top-level document
// persisted after every run and has two shapes: success and error.
package pick
