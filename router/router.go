package router

import (
	"github.com/gorilla/mux"

	handler "github.com/imgfetch/handler/v1/images"
	"github.com/imgfetch/model"
	"github.com/imgfetch/notify"
	"github.com/imgfetch/web/uploader"
)

// New returns new router.
func New(fetcher handler.Fetcher, downloadsRepo model.DownloadsRepository, uploadSvc uploader.Service, hub *notify.Hub, destination string) *mux.Router {
	router := mux.NewRouter()
	imgSvcV1 := handler.NewService(fetcher, downloadsRepo, uploadSvc, hub, destination)

	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	apiV1.HandleFunc("/images/download", imgSvcV1.Download).Methods("POST")
	apiV1.HandleFunc("/images/downloaded", imgSvcV1.Downloaded).Methods("GET")

	apiV1.HandleFunc("/downloads", imgSvcV1.Recent).Methods("GET")
	apiV1.Handle("/notifications", hub.Handler()).Methods("GET")
	return router
}
