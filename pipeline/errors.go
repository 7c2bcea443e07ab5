package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch did not complete.
type Kind int

const (
	// KindNone means no failure.
	KindNone Kind = iota
	// KindInvalidInput is a blank URL, rejected before any network call.
	KindInvalidInput
	// KindNetwork covers transport errors, unreadable bodies and non-success statuses.
	KindNetwork
	// KindDecode means the body is not a decodable raster image.
	KindDecode
	// KindPersistence means the image was decoded but could not be stored.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindInvalidInput:
		return "invalid_input"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindPersistence:
		return "persistence"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var errBlankURL = errors.New("url is blank")

// ErrEmptyBody is wrapped into a decode error when the response has no content.
var ErrEmptyBody = errors.New("empty response body")

// Error is the failure returned by the pipeline.
type Error struct {
	Kind Kind
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: fetching %q failed with error: %v", e.Kind, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, KindNone for nil. Errors not
// produced by the pipeline report as KindNetwork.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	return KindNetwork
}
