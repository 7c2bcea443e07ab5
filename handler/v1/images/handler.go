package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/imgfetch/logger"
	"github.com/imgfetch/model"
	"github.com/imgfetch/notify"
	"github.com/imgfetch/pipeline"
	"github.com/imgfetch/web/uploader"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Fetcher runs the fetch pipeline in the background.
type Fetcher interface {
	FetchAsync(context.Context, model.FetchRequest) <-chan pipeline.Result
}

// Service represents handler service.
type Service struct {
	fetcher     Fetcher
	repo        model.DownloadsRepository
	uploader    uploader.Service
	hub         *notify.Hub
	destination string
}

// NewService returns new handler service. repo and uploader are optional.
func NewService(fetcher Fetcher, repo model.DownloadsRepository, uploader uploader.Service, hub *notify.Hub, destination string) *Service {
	return &Service{fetcher: fetcher, repo: repo, uploader: uploader, hub: hub, destination: destination}
}

type downloadResponse struct {
	ID         string `json:"id,omitempty"`
	Message    string `json:"message"`
	Resolution string `json:"resolution,omitempty"`
	Location   string `json:"location,omitempty"`
	Cause      string `json:"cause,omitempty"`
}

// Download fetches the image at the "url" query parameter and stores it.
func (s *Service) Download(w http.ResponseWriter, r *http.Request) {
	data, statusCode := func() ([]byte, int) {
		rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
		if rawURL == "" {
			s.publish(notify.Notification{Message: notify.MsgInvalidURL})
			return marshal(downloadResponse{Message: notify.MsgInvalidURL, Cause: pipeline.KindInvalidInput.String()}, http.StatusBadRequest)
		}

		ctx := r.Context()
		id := uuid.New().String()
		logger.Infof("download %s: fetching %s", id, rawURL)

		res := <-s.fetcher.FetchAsync(ctx, model.FetchRequest{URL: rawURL, Destination: s.destination})
		kind := pipeline.KindOf(res.Err)

		record := model.Download{ID: id, URL: rawURL, Outcome: kind.String(), CreatedAt: time.Now().UTC()}
		if res.Err != nil {
			logger.Errorf("download %s: %v", id, res.Err)
			s.save(ctx, record)
			s.publish(notify.Notification{ID: id, Message: notify.MsgFailure})
			return marshal(downloadResponse{ID: id, Message: notify.MsgFailure, Cause: kind.String()}, statusFor(kind))
		}

		b := res.Image.Bounds()
		record.Resolution = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
		s.save(ctx, record)
		logger.Infof("download %s: stored %s image at %s", id, record.Resolution, s.destination)

		resp := downloadResponse{ID: id, Message: notify.MsgSuccess, Resolution: record.Resolution}
		if s.uploader != nil {
			location, err := s.mirror(ctx, res)
			if err != nil {
				logger.Errorf("download %s: mirroring failed: %v", id, err)
			}
			resp.Location = location
		}

		s.publish(notify.Notification{ID: id, Message: notify.MsgSuccess, Success: true})
		return marshal(resp, http.StatusCreated)
	}()
	response(w, data, statusCode)
}

// Downloaded serves the stored image.
func (s *Service) Downloaded(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(s.destination)
	if err != nil {
		if os.IsNotExist(err) {
			response(w, []byte("no image has been downloaded yet"), http.StatusNotFound)
			return
		}
		response(w, []byte(fmt.Sprintf("error opening stored image: %v", err)), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		response(w, []byte(fmt.Sprintf("error reading stored image: %v", err)), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// Recent returns the newest journaled downloads.
func (s *Service) Recent(w http.ResponseWriter, r *http.Request) {
	data, statusCode := func() ([]byte, int) {
		limit, err := validateLimitParam(r)
		if err != nil {
			return []byte(fmt.Sprintf("error validating limit param: %v", err)),
				http.StatusBadRequest
		}
		if s.repo == nil {
			return marshal([]model.Download{}, http.StatusOK)
		}
		downloads, err := s.repo.Recent(r.Context(), limit)
		if err != nil {
			return []byte(fmt.Sprintf("error getting downloads from db: %v", err)),
				http.StatusInternalServerError
		}
		return marshal(downloads, http.StatusOK)
	}()
	response(w, data, statusCode)
}

func (s *Service) mirror(ctx context.Context, res pipeline.Result) (string, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, res.Image, imaging.PNG); err != nil {
		return "", fmt.Errorf("error encoding image to buffer: %w", err)
	}
	return s.uploader.Upload(ctx, filepath.Base(s.destination), buf)
}

func (s *Service) save(ctx context.Context, d model.Download) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, d); err != nil {
		logger.Errorf("download %s: journaling failed: %v", d.ID, err)
	}
}

func (s *Service) publish(n notify.Notification) {
	if s.hub != nil {
		s.hub.Publish(n)
	}
}

func statusFor(kind pipeline.Kind) int {
	switch kind {
	case pipeline.KindInvalidInput:
		return http.StatusBadRequest
	case pipeline.KindNetwork:
		return http.StatusBadGateway
	case pipeline.KindDecode:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func marshal(v interface{}, statusCode int) ([]byte, int) {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte(fmt.Sprintf("error marshaling result: %v", err)),
			http.StatusInternalServerError
	}
	return b, statusCode
}

func response(w http.ResponseWriter, data []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func validateLimitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultRecentLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit param")
	}
	if limit <= 0 || limit > maxRecentLimit {
		return 0, fmt.Errorf("limit is not in range [1-%d]", maxRecentLimit)
	}
	return limit, nil
}
