// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the ed3 command.
//
// Configuration is assembled from multiple sources. A value set by an earlier
// source is never replaced by a later one:
//  1. Environment variables
//  2. Command-line flags (only the ones the user actually set)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [Load]; flags are registered on the root command's
// flag set with [RegisterFlags].
package config
