package model

import (
	"context"
	"time"
)

// FetchRequest describes a single image download.
type FetchRequest struct {
	URL         string
	Destination string
}

// Download describes one journaled download attempt.
type Download struct {
	ID         string
	URL        string
	Outcome    string
	Resolution string `json:",omitempty"`
	CreatedAt  time.Time
}

// DownloadsRepository describes methods for working with the download journal.
type DownloadsRepository interface {
	Save(context.Context, Download) error
	Recent(context.Context, int) ([]Download, error)
}
