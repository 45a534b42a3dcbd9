package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/services"
)

// S3Controller issues presigned URLs for avatar images
type S3Controller struct{}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller() *S3Controller {
	return &S3Controller{}
}

// PresignUpload returns a presigned PUT URL for an avatar upload
func (sc *S3Controller) PresignUpload(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.FileName == "" || request.FileType == "" {
		http.Error(w, `{"message": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	uploadURL, key, err := services.GenerateAvatarUploadURL(request.FileName, request.FileType)
	if err != nil {
		http.Error(w, `{"message": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"uploadUrl": uploadURL, "key": key})
}

// PresignRead returns a presigned GET URL for a stored avatar
func (sc *S3Controller) PresignRead(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"message": "key is required"}`, http.StatusBadRequest)
		return
	}

	readURL, err := services.GenerateAvatarReadURL(key)
	if err != nil {
		http.Error(w, `{"message": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": readURL})
}
