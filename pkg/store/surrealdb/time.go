package surrealdb

import "time"

// nowFunc is swappable for tests.
var nowFunc = time.Now

// stampTimes fills zero timestamps in place; explicitly set values
// are kept.
func stampTimes(createdAt, updatedAt *time.Time) {
	now := nowFunc()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
