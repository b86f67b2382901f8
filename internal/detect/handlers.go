package detect

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/medscan/amount-detector/internal/profile"
)

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// corsError writes a plain error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// jsonError writes a JSON error object with CORS headers set
func jsonError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response body
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// detectRequest is the body of POST /api/detect and POST /api/profile.
// Exactly one of Text or Image (base64) must be provided.
type detectRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// handleDetect runs the amount detection pipeline over raw text or a
// base64-encoded document image
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch {
	case req.Text != "":
		detection, err := s.service.DetectText(req.Text)
		if err != nil {
			slog.Error("Error detecting amounts in text", "error", err)
			jsonError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, detection.Result)

	case req.Image != "":
		data, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			jsonError(w, "Invalid base64 image data", http.StatusBadRequest)
			return
		}
		contentType := http.DetectContentType(data)
		detection, err := s.service.DetectImage("upload"+extensionFor(contentType), data, contentType)
		if err != nil {
			slog.Error("Error detecting amounts in image", "content_type", contentType, "error", err)
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, detection.Result)

	default:
		jsonError(w, "Provide either text or image", http.StatusBadRequest)
	}
}

// handleProfile extracts a structured health profile from text or a
// document image and runs risk profiling on it
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var (
		lines      []string
		confidence = 1.0
	)
	switch {
	case req.Text != "":
		lines = strings.Split(req.Text, "\n")

	case req.Image != "":
		data, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			jsonError(w, "Invalid base64 image data", http.StatusBadRequest)
			return
		}
		lines, confidence, err = s.service.RecognizeLines(data, http.DetectContentType(data))
		if err != nil {
			slog.Error("Error recognizing profile document", "error", err)
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}

	default:
		jsonError(w, "Provide either text or image", http.StatusBadRequest)
		return
	}

	answers := profile.ParseAnswers(lines)
	missing := profile.MissingFields(answers)

	response := map[string]any{
		"answers":        answers,
		"missing_fields": missing,
		"confidence":     confidence,
	}
	if profile.Incomplete(answers) {
		response["status"] = "incomplete_profile"
		response["reason"] = ">50% fields missing"
		writeJSON(w, http.StatusOK, response)
		return
	}

	response["assessment"] = s.profiler.Analyze(answers)
	writeJSON(w, http.StatusOK, response)
}

// extensionFor picks a filename extension for a sniffed content type
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}

// handleListDetections returns all recorded detections
func (s *Server) handleListDetections(w http.ResponseWriter, r *http.Request) {
	detections, err := s.service.ListDetections()
	if err != nil {
		slog.Error("Error listing detections", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, detections)
}

// handleGetDetection returns a single detection
func (s *Server) handleGetDetection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Detection ID required", http.StatusBadRequest)
		return
	}
	detection, err := s.service.GetDetection(id)
	if err != nil {
		corsError(w, "Detection not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, detection)
}

// handleGetDetectionFile returns the stored document for a detection
func (s *Server) handleGetDetectionFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Detection ID required", http.StatusBadRequest)
		return
	}
	data, contentType, err := s.service.GetDetectionFile(id)
	if err != nil {
		corsError(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// handleDeleteDetection deletes a detection
func (s *Server) handleDeleteDetection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Detection ID required", http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteDetection(id); err != nil {
		corsError(w, "Error deleting detection", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "medical-amount-detector",
	})
}

// handleIndex describes the service
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service":  "Medical Document Amount Detection API",
		"endpoint": "/api/detect",
		"health":   "/health",
	})
}
