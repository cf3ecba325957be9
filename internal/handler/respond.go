package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"drink-coffee/pkg/logger"

	"github.com/gorilla/mux"
)

// writeJSONResponse writes a JSON response with the given status code and data
func writeJSONResponse(log *logger.Logger, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error("Failed to encode JSON response", "error", err)
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// writeErrorResponse writes an error response with the given status code and message
func writeErrorResponse(log *logger.Logger, w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}

// parseRequestBody parses a JSON request body into the target struct
func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// productIDFromPath reads the {id} route variable as a product id
func productIDFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
