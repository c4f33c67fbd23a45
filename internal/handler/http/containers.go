// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/utils"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

const contentTypeContainer = "application/octet-stream"

func (h *Handler) build(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.build").Msg("invalid JSON was passed")
		h.writeError(w, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	check := models.CreateRequest{Metadata: req.Metadata, Force: req.Force}
	if err := h.validator.Validate(r.Context(), check, validators.FieldMetadata, validators.FieldShape); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.build").Msg("metadata rejected")
		h.writeError(w, err)
		return
	}

	container, err := h.services.Codec.Build(r.Context(), req.Payload, req.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*Handler.build").Msg("error building container")
		h.writeError(w, err)
		return
	}

	log.Debug().
		Str("func", "*Handler.build").
		Int("payload_size", len(req.Payload)).
		Int("size", len(container)).
		Msg("container built")

	_, _ = utils.WriteBytes(w, container, contentTypeContainer, http.StatusOK)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.parse").Msg("error reading request body")
		h.writeError(w, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	container, err := h.services.Codec.Parse(r.Context(), data)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.parse").Msg("container rejected")
		h.writeError(w, err)
		return
	}

	resp := models.ParseResponse{
		Payload:       container.Payload,
		HasMetadata:   container.HasMetadata,
		PayloadFormat: ed3.DetectPayloadFormat(container.Payload).String(),
		PayloadSize:   len(container.Payload),
	}
	if container.HasMetadata {
		metadata := container.Metadata
		resp.Metadata = &metadata
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.parse").Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := statusFromError(err)
	utils.WriteError(w, code, errorMessage(err, status), status)
}
