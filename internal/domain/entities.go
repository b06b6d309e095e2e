package domain

import (
	"fmt"
	"strings"
)

// Artwork is a single catalog record fetched from the collection API.
// Values are treated as immutable once fetched.
type Artwork struct {
	ID           string // Collection-specific unique identifier
	Title        string // Display title
	Artist       string // Artist display name
	ArtistBio    string // Nationality and life dates, free text
	Date         string // Free-text object date (e.g., "ca. 1880")
	Period       string // Free-text period or dynasty
	Style        string // Pipe-delimited style/classification tokens
	Medium       string // Free-text medium, delimited by "," ";" or "and"
	Department   string // Curatorial department
	Dimensions   string // Free-text dimensions
	CreditLine   string // Acquisition credit line
	PublicDomain bool   // Whether the images are public domain

	// Image URLs
	PrimaryImage      string   // Full-size primary image
	PrimaryImageSmall string   // Web-sized primary image
	AdditionalImages  []string // Additional views, in upstream order

	DetailURL string // External detail page
}

// HasImage reports whether the artwork carries at least one usable image.
// An artwork without one is never shown.
func (a Artwork) HasImage() bool {
	if strings.TrimSpace(a.PrimaryImage) != "" {
		return true
	}
	for _, img := range a.AdditionalImages {
		if strings.TrimSpace(img) != "" {
			return true
		}
	}
	return false
}

// ImageURLs returns the primary image followed by the additional images,
// skipping blank entries.
func (a Artwork) ImageURLs() []string {
	urls := make([]string, 0, 1+len(a.AdditionalImages))
	if s := strings.TrimSpace(a.PrimaryImage); s != "" {
		urls = append(urls, s)
	}
	for _, img := range a.AdditionalImages {
		if s := strings.TrimSpace(img); s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}

// DisplayImage returns the first usable image URL, or "" if none.
func (a Artwork) DisplayImage() string {
	if urls := a.ImageURLs(); len(urls) > 0 {
		return urls[0]
	}
	return ""
}

// DisplayArtist returns the artist name, or "Unknown" when absent
func (a Artwork) DisplayArtist() string {
	if a.Artist == "" {
		return "Unknown"
	}
	return a.Artist
}

// Attribution returns a one-line "Artist, Date" summary
func (a Artwork) Attribution() string {
	if a.Date == "" {
		return a.DisplayArtist()
	}
	return fmt.Sprintf("%s, %s", a.DisplayArtist(), a.Date)
}

// DailyEntry pairs a calendar date (YYYY-MM-DD, device-local) with the
// artwork designated for that day. At most one entry is stored.
type DailyEntry struct {
	Date    string
	Artwork Artwork
}

// IsValidFor reports whether the entry belongs to the given date and
// still carries an image.
func (e DailyEntry) IsValidFor(date string) bool {
	return e.Date == date && e.Artwork.HasImage()
}

// Filter narrows the upstream identifier listing.
// The zero value selects the whole collection.
type Filter struct {
	Query     string // Free-text search
	Medium    string // Pipe-joined medium names
	HasImages bool   // Restrict to records the API reports as illustrated
}

// IsZero returns true if the filter selects the unfiltered universe
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Medium == "" && !f.HasImages
}
