// Package history holds the immutable delivery record appended for every
// completed job. Records are the source for the daily per-courier reports.
package history
