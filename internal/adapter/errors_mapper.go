// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/utils"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body utils.ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(resp.Body()))
	}

	switch body.Code {
	case models.ErrCodeEmptyMetadata:
		return fmt.Errorf("%w: %s", validators.ErrEmptyMetadata, body.Error)
	case models.ErrCodeNonJSONShape:
		return fmt.Errorf("%w: %s", validators.ErrNonJSONShape, body.Error)
	case models.ErrCodeMalformedMetadata:
		return fmt.Errorf("%w: %s", ed3.ErrMalformedMetadataEncoding, body.Error)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body.Error)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrBodyTooLarge, body.Error)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, body.Error)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body.Error)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrServerUnavailable, body.Error)
	default:
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body.Error)
	}
}
