// Package pipeline downloads an image, decodes it and keeps a PNG copy on disk.
package pipeline

import (
	"bytes"
	"context"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/imgfetch/logger"
	"github.com/imgfetch/model"
	"github.com/imgfetch/web/downloader"
)

// Result is delivered by FetchAsync once the fetch completes.
type Result struct {
	Image image.Image
	Err   error
}

// Pipeline fetches, decodes and persists images.
type Pipeline struct {
	downloader downloader.Service
}

// New returns pipeline that fetches through the given downloader.
func New(downloader downloader.Service) *Pipeline {
	return &Pipeline{downloader: downloader}
}

// Fetch performs one GET for req.URL, decodes the body and stores it as PNG
// at req.Destination. On a persistence failure the decoded image is returned
// together with the error.
func (p *Pipeline) Fetch(ctx context.Context, req model.FetchRequest) (image.Image, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, &Error{Kind: KindInvalidInput, URL: req.URL, Err: errBlankURL}
	}

	b, err := p.downloader.Download(ctx, req.URL)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, URL: req.URL, Err: err}
	}
	if len(b) == 0 {
		return nil, &Error{Kind: KindDecode, URL: req.URL, Err: ErrEmptyBody}
	}

	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &Error{Kind: KindDecode, URL: req.URL, Err: err}
	}
	logger.Debugf("decoded %s into %dx%d image", req.URL, img.Bounds().Dx(), img.Bounds().Dy())

	if err := savePNG(img, req.Destination); err != nil {
		return img, &Error{Kind: KindPersistence, URL: req.URL, Err: err}
	}
	return img, nil
}

// FetchAsync runs Fetch on its own goroutine. The returned channel receives
// exactly one Result and is then closed.
func (p *Pipeline) FetchAsync(ctx context.Context, req model.FetchRequest) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		img, err := p.Fetch(ctx, req)
		ch <- Result{Image: img, Err: err}
	}()
	return ch
}
