// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic of go-ed3: creating and opening
// containers, extracting and playing their payloads, inspecting many files at
// once and reading the catalog of recent work.
//
// Services talk to the disk and the catalog through package store and to the
// outside world through package adapter. Container encoding goes through a
// [Codec], which is either in-process ([NewLocalCodec]) or a remote server.
package service
