package met

import (
	"strconv"
	"strings"

	"github.com/mmcdole/dailyart/internal/domain"
)

// MapObjectIDs converts numeric object IDs to domain identifiers
func MapObjectIDs(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out
}

// MapArtwork converts a Met object to a domain artwork.
// Missing fields stay empty; nothing here fails.
func MapArtwork(o Object) domain.Artwork {
	return domain.Artwork{
		ID:                strconv.FormatInt(o.ObjectID, 10),
		Title:             strings.TrimSpace(o.Title),
		Artist:            strings.TrimSpace(o.ArtistDisplayName),
		ArtistBio:         strings.TrimSpace(o.ArtistDisplayBio),
		Date:              strings.TrimSpace(o.ObjectDate),
		Period:            firstNonEmpty(o.Period, o.Dynasty, o.Reign),
		Style:             styleTokens(o),
		Medium:            strings.TrimSpace(o.Medium),
		Department:        strings.TrimSpace(o.Department),
		Dimensions:        strings.TrimSpace(o.Dimensions),
		CreditLine:        strings.TrimSpace(o.CreditLine),
		PublicDomain:      o.IsPublicDomain,
		PrimaryImage:      strings.TrimSpace(o.PrimaryImage),
		PrimaryImageSmall: strings.TrimSpace(o.PrimaryImageSmall),
		AdditionalImages:  compact(o.AdditionalImages),
		DetailURL:         strings.TrimSpace(o.ObjectURL),
	}
}

// styleTokens builds the pipe-delimited style string from classification,
// object name, culture and subject tags.
func styleTokens(o Object) string {
	var parts []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		parts = append(parts, s)
	}

	// Classification may itself be "Paintings|Prints"
	for _, c := range strings.Split(o.Classification, "|") {
		add(c)
	}
	add(o.ObjectName)
	add(o.Culture)
	for _, t := range o.Tags {
		add(t.Term)
	}
	return strings.Join(parts, "|")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func compact(urls []string) []string {
	if len(urls) == 0 {
		return nil
	}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
