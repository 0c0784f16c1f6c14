// Package parsing handles URL validation and related parsing helpers.
package parsing

import (
	"errors"
	"net/url"

	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/errconsts"

	"golang.org/x/net/publicsuffix"
)

// ValidateYouTubeURL checks that rawURL parses and that its host is an
// accepted YouTube hostname. Must pass before any process invocation.
func ValidateYouTubeURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return errors.New(errconsts.InvalidURLFormat)
	}

	host := u.Hostname()
	if host == "" {
		return errors.New(errconsts.NoHostInURL)
	}

	if !consts.ValidYouTubeHosts[host] {
		return errors.New(errconsts.NotAYouTubeURL)
	}
	return nil
}

// BaseDomain returns the registrable base domain for an inputted URL.
func BaseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}
