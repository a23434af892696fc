// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the login triple sent to the tracker's login form. It is
// only held for the duration of [session.Manager.Establish] and is never
// written to the session store or to logs.
type Credentials struct {
	// Username is the tracker account name.
	Username string `json:"username"`

	// Password is the plaintext account password.
	Password string `json:"-"`

	// TwoFA is the optional second-factor code. Empty when the account has
	// no 2FA enabled.
	TwoFA string `json:"-"`
}

// Complete reports whether both username and password are present, which is
// the minimum needed for a fresh login.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}
