package met

// ObjectsResponse is returned by both /objects and /search.
// The search endpoint reports "objectIDs": null when nothing matches.
type ObjectsResponse struct {
	Total     int     `json:"total"`
	ObjectIDs []int64 `json:"objectIDs"`
}

// Object represents a single collection record from /objects/{id}.
// Most fields are optional; the API returns empty strings for unknowns.
type Object struct {
	ObjectID          int64    `json:"objectID"`
	IsHighlight       bool     `json:"isHighlight,omitempty"`
	IsPublicDomain    bool     `json:"isPublicDomain,omitempty"`
	PrimaryImage      string   `json:"primaryImage,omitempty"`
	PrimaryImageSmall string   `json:"primaryImageSmall,omitempty"`
	AdditionalImages  []string `json:"additionalImages,omitempty"`
	Department        string   `json:"department,omitempty"`
	ObjectName        string   `json:"objectName,omitempty"`
	Title             string   `json:"title,omitempty"`
	Culture           string   `json:"culture,omitempty"`
	Period            string   `json:"period,omitempty"`
	Dynasty           string   `json:"dynasty,omitempty"`
	Reign             string   `json:"reign,omitempty"`
	ArtistDisplayName string   `json:"artistDisplayName,omitempty"`
	ArtistDisplayBio  string   `json:"artistDisplayBio,omitempty"`
	ObjectDate        string   `json:"objectDate,omitempty"`
	ObjectBeginDate   int      `json:"objectBeginDate,omitempty"`
	ObjectEndDate     int      `json:"objectEndDate,omitempty"`
	Medium            string   `json:"medium,omitempty"`
	Dimensions        string   `json:"dimensions,omitempty"`
	CreditLine        string   `json:"creditLine,omitempty"`
	Classification    string   `json:"classification,omitempty"`
	ObjectURL         string   `json:"objectURL,omitempty"`
	Tags              []Tag    `json:"tags,omitempty"`
}

// Tag is a subject keyword attached to an object
type Tag struct {
	Term        string `json:"term"`
	AATURL      string `json:"AAT_URL,omitempty"`
	WikidataURL string `json:"Wikidata_URL,omitempty"`
}
