package synth

import (
	"strconv"
	"strings"
	"time"

	"github.com/waprofiles/waprofiles/constants"
	"github.com/waprofiles/waprofiles/internal/entity"
)

// aboutTemplates is the fixed pool of status lines. Order matters: the
// hash selects by index, so reordering changes every synthesized profile.
var aboutTemplates = []string{
	"Living my best life!",
	"Available on WhatsApp only.",
	"Work hard, dream big.",
	"Stay positive, work hard, make it happen.",
	"✨ Hustle in silence. ✨",
	"Just another human on the internet.",
	"Business inquiries only.",
	"Blessed and grateful.",
}

// Synthesize derives every profile field from fixed slices of the digest,
// interpreted as base-16 integers. The reference instant now anchors the
// about_last_updated timestamp; callers pass one instant per batch so a
// whole run is internally consistent and tests can pin it.
func Synthesize(number, digest, mediaBaseURL string, now time.Time) *entity.Profile {
	isRegistered := hexInt(digest, 12, 14)%3 != 0

	accountType := constants.AccountTypePersonal
	if hexInt(digest, 14, 16)%5 == 0 {
		accountType = constants.AccountTypeBusiness
	}

	about := ""
	if isRegistered {
		about = aboutTemplates[hexInt(digest, 8, 12)%int64(len(aboutTemplates))]
	}

	profilePicture := ""
	if isRegistered {
		profilePicture = strings.TrimRight(mediaBaseURL, "/") + "/" + digest[:16] + ".jpg"
	}

	return &entity.Profile{
		Number:           number,
		IsRegistered:     isRegistered,
		ProfilePicture:   profilePicture,
		About:            about,
		AboutLastUpdated: FormatISO(aboutLastUpdated(digest, now)),
		AccountType:      accountType,
	}
}

// aboutLastUpdated places the timestamp up to a year in the past relative
// to the reference instant, truncated to whole seconds.
func aboutLastUpdated(digest string, now time.Time) time.Time {
	daysAgo := hexInt(digest, 0, 4) % 365
	hoursAgo := hexInt(digest, 4, 6) % 24
	minutesAgo := hexInt(digest, 6, 8) % 60

	t := now.UTC().
		AddDate(0, 0, -int(daysAgo)).
		Add(-time.Duration(hoursAgo)*time.Hour - time.Duration(minutesAgo)*time.Minute)
	return t.Truncate(time.Second)
}

// hexInt reads digest[lo:hi] as a base-16 integer. The digest is always
// 64 lowercase hex characters, so parsing cannot fail.
func hexInt(digest string, lo, hi int) int64 {
	v, _ := strconv.ParseInt(digest[lo:hi], 16, 64)
	return v
}
