// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

const (
	CodeEmptyUnwrap      = "MB0001"
	CodeMissingAttribute = "MB0002"
	CodeIndexOrKey       = "MB0003"
)
