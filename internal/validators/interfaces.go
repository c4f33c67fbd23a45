// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for the go-ed3 application.
//
// The ed3 core builds whatever it is given; validators decide what the
// application accepts. Some failures are advisory (see [IsAdvisory]): the
// caller may ask the user to confirm and continue anyway.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
