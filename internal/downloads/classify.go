package downloads

import (
	"strings"

	"autostepper/internal/domain/errconsts"
)

// Phrases yt-dlp emits when YouTube challenges automated traffic. Matching
// is plain substring search over raw stderr; YouTube rewords these from
// time to time, so treat a miss as "probably not bot detection" rather
// than a guarantee.
const (
	phraseSignIn    = "Sign in to confirm"
	phraseBot       = "bot"
	phraseCommunity = "This helps protect our community"

	phraseNoJSRuntime = "No supported JavaScript runtime"
)

// IsBotDetection reports whether stderr looks like an anti-bot challenge
// rather than an ordinary failure.
func IsBotDetection(stderr string) bool {
	return strings.Contains(stderr, phraseSignIn) ||
		strings.Contains(strings.ToLower(stderr), phraseBot) ||
		strings.Contains(stderr, phraseCommunity)
}

// IsMissingJSRuntime reports whether stderr says yt-dlp found no JS
// runtime to solve YouTube's player challenges with.
func IsMissingJSRuntime(stderr string) bool {
	return strings.Contains(stderr, phraseNoJSRuntime)
}

// botHint picks the remediation hint for a terminal bot-detection failure
// based on whether browser cookies were available to escalate with.
func botHint(cookiesAvailable bool) string {
	if cookiesAvailable {
		return errconsts.HintCookiesTried
	}
	return errconsts.HintNoCookies
}
