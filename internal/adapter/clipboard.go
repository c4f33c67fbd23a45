// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type systemClipboard struct {
	write       func(string) error
	unsupported func() bool
}

// NewClipboard returns a [Clipboard] backed by the system clipboard.
func NewClipboard() Clipboard {
	return &systemClipboard{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// WriteText implements [Clipboard].
func (c *systemClipboard) WriteText(text string) error {
	if c.unsupported() {
		return ErrClipboardUnavailable
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}

	return nil
}
