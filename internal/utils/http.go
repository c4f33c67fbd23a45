// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON shape of every error response of the HTTP API.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON serializes data to JSON, sets "Content-Type: application/json"
// and writes statusCode followed by the body.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes message and a machine-readable code wrapped in an
// [ErrorBody].
func WriteError(w http.ResponseWriter, code, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorBody{Error: message, Code: code}, statusCode)
}

// WriteBytes writes a binary body with the given content type.
func WriteBytes(w http.ResponseWriter, data []byte, contentType string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(data)
}
