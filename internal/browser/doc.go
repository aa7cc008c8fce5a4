// Package browser drives a headless Chrome session through the DevTools protocol.
//
// It wraps chromedp with the few operations a page scrape needs: navigate, click
// an element once it is clickable, wait for an element to exist, and read the
// rendered DOM. Every wait is bounded by its own timeout and Close is safe to
// call more than once.
package browser
