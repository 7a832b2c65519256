package narou

import (
	"errors"
	"fmt"
)

// ErrNoEpisodes is returned when range filtering leaves nothing to fetch.
var ErrNoEpisodes = errors.New("no episodes matched the requested range")

// ResolutionError means no ncode could be extracted from the user input.
// It is raised before any network access.
type ResolutionError struct {
	Input string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to extract ncode from: %s", e.Input)
}

// FetchError means all retry attempts for one request were exhausted.
type FetchError struct {
	Url      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to get %s after %d attempts: %v", e.Url, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
