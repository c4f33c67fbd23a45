// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/mock"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/internal/utils"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testVersion = "test-version"

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    ":0",
		RequestTimeout: 5 * time.Second,
		MaxBodySize:    1 << 20,
	}
}

// newTestHandler returns a Handler backed by the in-process codec.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(testVersion).AnyTimes()

	return NewHandler(&service.Services{
		AppInfoService: appInfo,
		Codec:          service.NewLocalCodec(),
	}, testServerConfig(), logger.Nop())
}

// newTestHandlerWithCodec returns a Handler using codec.
func newTestHandlerWithCodec(t *testing.T, codec service.Codec) *Handler {
	t.Helper()

	return NewHandler(&service.Services{Codec: codec}, testServerConfig(), logger.Nop())
}

func serve(t *testing.T, h http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()

	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()

	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
