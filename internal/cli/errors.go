// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrInvalidParam    = errors.New("invalid parameter")
	ErrInvalidArgument = errors.New("invalid argument")
)
