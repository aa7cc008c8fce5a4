// Package scraper runs the projection-board scrape and turns it into a result document.
//
// A run launches a browser session, loads the board, dismisses the promo popup
// when one shows up, waits for projection cards to render and then parses the
// rendered DOM with goquery. Cards that are missing a field are logged and
// skipped. Any other failure aborts the run and yields an error-shaped result,
// so callers always have a document to persist. The session is closed exactly
// once on every path.
package scraper
