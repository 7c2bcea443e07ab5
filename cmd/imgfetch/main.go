package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/lib/pq"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/imgfetch/config"
	"github.com/imgfetch/logger"
	"github.com/imgfetch/model"
	"github.com/imgfetch/notify"
	"github.com/imgfetch/pipeline"
	"github.com/imgfetch/repository/downloads"
	"github.com/imgfetch/router"
	"github.com/imgfetch/web/downloader"
	"github.com/imgfetch/web/uploader"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("error loading config: %v", err)
	}
	logger.SetVerbose(cfg.Verbose)

	var downloadsRepo model.DownloadsRepository
	if cfg.Postgres.Enabled() {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			logger.Fatalf("error creating db connection: %v", err)
		}
		defer db.Close()

		repo := downloads.NewRepo(db)
		if err := repo.Migrate(context.Background()); err != nil {
			logger.Fatalf("error preparing download journal: %v", err)
		}
		downloadsRepo = repo
		logger.Infof("download journal enabled on %s", cfg.Postgres.Host)
	}

	var uploadSvc uploader.Service
	if cfg.S3Bucket != "" {
		sess, err := session.NewSession()
		if err != nil {
			logger.Fatalf("error creating aws session: %v", err)
		}
		uploadSvc = uploader.New(s3manager.NewUploader(sess), cfg.S3Bucket)
		logger.Infof("mirroring downloads to s3 bucket %s", cfg.S3Bucket)
	}

	client := downloader.NewClient(cfg.HTTPTimeout, cfg.MaxRedirects)
	fetcher := pipeline.New(downloader.New(client))

	logger.Infof("storing downloads at %s", cfg.Destination())
	logger.Infof("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router.New(fetcher, downloadsRepo, uploadSvc, notify.NewHub(), cfg.Destination())); err != nil {
		logger.Fatalf("error running server: %v", err)
	}
}
