package service

import "errors"

var (
	// ErrUnknownManager is returned when a requested manager never appears in
	// the head-to-head grid.
	ErrUnknownManager = errors.New("unknown manager")

	// ErrUnknownSeason is returned when a requested season is absent from the
	// manifest or record book.
	ErrUnknownSeason = errors.New("unknown season")

	// ErrUnknownCategory is returned when a record-book category name is not
	// one of the exported kinds.
	ErrUnknownCategory = errors.New("unknown record category")

	// ErrNotStarted is returned when an operation runs before Start.
	ErrNotStarted = errors.New("service not started")
)
