// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

type errorMapping struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorMapping{
	ErrInvalidRequestBody:            {http.StatusBadRequest, models.ErrCodeInvalidData},
	validators.ErrEmptyMetadata:      {http.StatusBadRequest, models.ErrCodeEmptyMetadata},
	validators.ErrNonJSONShape:       {http.StatusUnprocessableEntity, models.ErrCodeNonJSONShape},
	ed3.ErrMalformedMetadataEncoding: {http.StatusUnprocessableEntity, models.ErrCodeMalformedMetadata},
}

func statusFromError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, models.ErrCodeBodyTooLarge
	}

	for target, m := range errorStatusMap {
		if errors.Is(err, target) {
			return m.status, m.code
		}
	}

	return http.StatusInternalServerError, models.ErrCodeInternal
}

// errorMessage hides internal failures from clients.
func errorMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}

	return err.Error()
}
