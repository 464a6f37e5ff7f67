package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"gamelog-tracker/internal/constants"
	"gamelog-tracker/internal/service"

	"github.com/rs/zerolog"
)

type remoteGameLogRequest struct {
	URL string `json:"url"`
}

func (s *Server) uploadGameLogs(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			writeError(w, r, err)
			return
		}

		writeError(w, r, badRequest("No file uploaded"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[constants.UploadFormField]
	if len(headers) == 0 {
		writeError(w, r, badRequest("No file uploaded"))
		return
	}

	files := make([]service.LogFile, 0, len(headers))
	for _, header := range headers {
		if !allowedExtension(header.Filename) {
			writeError(w, r, badRequest(fmt.Sprintf(
				"Invalid file extension. Only %s files are allowed",
				strings.Join(constants.AllowedLogExtensions, ", "),
			)))
			return
		}

		content, err := readUpload(header)
		if err != nil {
			writeError(w, r, err)
			return
		}

		files = append(files, service.LogFile{Name: header.Filename, Content: content})
	}

	zerolog.Ctx(r.Context()).Debug().Int("file_count", len(files)).Msg("game logs uploaded")

	result, err := s.gameLogsSvc.ProcessFiles(r.Context(), files)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, result)
}

func (s *Server) processRemoteGameLog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req remoteGameLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest("Invalid request body"))
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		writeError(w, r, badRequest("URL is required"))
		return
	}

	result, err := s.gameLogsSvc.ProcessRemote(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, result)
}

func allowedExtension(filename string) bool {
	return slices.Contains(constants.AllowedLogExtensions, strings.ToLower(filepath.Ext(filename)))
}

func readUpload(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}

	return string(content), nil
}
