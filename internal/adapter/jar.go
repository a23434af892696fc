// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"net/url"
	"sort"
	"time"

	cookiejar "github.com/juju/persistent-cookiejar"
	"golang.org/x/net/publicsuffix"
)

// sessionJar is the http.CookieJar handed to resty. Persistence to disk is
// disabled; the session manager owns where cookies are stored.
type sessionJar struct {
	jar *cookiejar.Jar
}

func newSessionJar() (*sessionJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
		NoPersist:        true,
	})
	if err != nil {
		return nil, err
	}
	return &sessionJar{jar: jar}, nil
}

// SetCookies implements [http.CookieJar].
func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)
}

// Cookies implements [http.CookieJar].
func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// All returns every unexpired cookie with its attributes, ordered by
// domain, path and name so that the persisted blob is stable. Session
// cookies come back with a zero Expires.
func (j *sessionJar) All() []*http.Cookie {
	all := j.jar.AllCookies()
	for _, c := range all {
		// the jar stamps session cookies with its end-of-time sentinel
		if c.Expires.Year() >= 9999 {
			c.Expires = time.Time{}
		}
	}
	sort.Slice(all, func(a, b int) bool {
		if all[a].Domain != all[b].Domain {
			return all[a].Domain < all[b].Domain
		}
		if all[a].Path != all[b].Path {
			return all[a].Path < all[b].Path
		}
		return all[a].Name < all[b].Name
	})
	return all
}
