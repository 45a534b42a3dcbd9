package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes wires the avatar presigning endpoints
func RegisterS3Routes(r *mux.Router, tokens *services.TokenService) {
	controller := controllers.NewS3Controller()

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.Use(middleware.RequireAuth(tokens))
	s3Router.HandleFunc("/presign-upload", controller.PresignUpload).Methods("POST")
	s3Router.HandleFunc("/presign-read", controller.PresignRead).Methods("GET")
}
