// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

import "bytes"

// IndexOf returns the index of the first occurrence of needle in haystack,
// or -1 if needle is not present. An empty needle matches at index 0.
//
// The search is an exact byte comparison with no case folding.
func IndexOf(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}

	return bytes.Index(haystack, needle)
}
