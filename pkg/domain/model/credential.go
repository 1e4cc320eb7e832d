package model

import (
	"time"

	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

// AppAssertion is a signed JWT asserting the app identity.
type AppAssertion struct {
	Token     types.AppAssertionToken
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// FreshAt reports whether the assertion can still be used at now with the given margin.
func (x *AppAssertion) FreshAt(now time.Time, margin time.Duration) bool {
	return x != nil && x.Token != "" && now.Before(x.ExpiresAt.Add(-margin))
}

// AccessToken is an installation token with server assigned expiry.
type AccessToken struct {
	Token     types.InstallationToken `json:"token" masq:"secret"`
	ExpiresAt time.Time               `json:"expires_at"`
}

func (x *AccessToken) FreshAt(now time.Time, margin time.Duration) bool {
	return x != nil && x.Token != "" && now.Before(x.ExpiresAt.Add(-margin))
}
