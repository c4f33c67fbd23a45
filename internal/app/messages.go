// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ed3/internal/adapter"
	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/internal/store"
	"github.com/MKhiriev/go-ed3/internal/validators"
)

var messages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyPayloadPath, MsgNoPayloadFileProvided},
	{validators.ErrEmptyMetadata, MsgNoMetadataProvided},
	{validators.ErrNonJSONShape, MsgMetadataNotJSON},
	{ed3.ErrMalformedMetadataEncoding, MsgMalformedMetadata},
	{store.ErrSourceNotFound, MsgSourceNotFound},
	{store.ErrReadFailed, MsgReadFailed},
	{store.ErrWriteFailed, MsgWriteFailed},
	{store.ErrCatalogUnavailable, MsgCatalogUnavailable},
	{service.ErrNoMetadata, MsgNoEmbeddedJSON},
	{adapter.ErrPlayerUnavailable, MsgPlayerUnavailable},
	{adapter.ErrClipboardUnavailable, MsgClipboardUnavailable},
	{adapter.ErrServerUnavailable, MsgServerUnavailable},
	{adapter.ErrInternalServerError, MsgInternalServerError},
	{adapter.ErrBadRequest, MsgInvalidDataProvided},
}

// Message returns the text shown to the user for err. Errors without a
// dedicated message are shown as is.
func Message(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return err.Error()
}

// withCause lists the errors whose wrapped text names the file or the
// operating system failure.
var withCause = []error{
	store.ErrSourceNotFound,
	store.ErrReadFailed,
	store.ErrWriteFailed,
	store.ErrCatalogUnavailable,
}

// Detailed is [Message] followed by the underlying error for file and
// catalog failures, so the path and the cause stay visible.
func Detailed(err error) string {
	msg := Message(err)
	if msg == "" || msg == err.Error() {
		return msg
	}

	for _, target := range withCause {
		if errors.Is(err, target) {
			return fmt.Sprintf("%s (%v)", msg, err)
		}
	}

	return msg
}
