// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types exchanged between the layers of the
// go-ed3 application: service requests and results, catalog entries and the
// HTTP API payloads.
package models
