package main

import (
	"github.com/sevigo/reviewterm/internal/review"
)

// Carries the outcome of one review request. Exactly one of resp/failure
// is set.
type reviewFinishedMsg struct {
	resp    *review.Response
	failure *review.Failure
}

// One tick of the retry countdown. The generation tags the countdown it
// belongs to, so a countdown replaced by a newer error stops dead instead of
// stacking.
type countdownTickMsg struct {
	gen int
}

// Result of the clipboard copy.
type copyDoneMsg struct {
	err error
}

// Reverts the "copied" hint after its two-second display.
type copyResetMsg struct {
	gen int
}

// Result of saving the improved code to disk.
type fileSavedMsg struct {
	path string
	err  error
}

// Result of exporting the HTML report.
type reportSavedMsg struct {
	path string
	err  error
}
