// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gazelle

// Version of the client library.
const Version = "1.0.1"
