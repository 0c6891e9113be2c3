package wavemeta

// Common LIST/INFO identifiers.
// See http://bwfmetaedit.sourceforge.net/listinfo.html
const (
	TagTitle        = "INAM"
	TagArtist       = "IART"
	TagComment      = "ICMT"
	TagCopyright    = "ICOP"
	TagCreationDate = "ICRD"
	TagEngineer     = "IENG"
	TagGenre        = "IGNR"
	TagKeywords     = "IKEY"
	TagMedium       = "IMED"
	TagProduct      = "IPRD"
	TagSubject      = "ISBJ"
	TagSoftware     = "ISFT"
	TagSource       = "ISRC"
	TagLocation     = "IARL"
	TagTechnician   = "ITCH"
	TagTrackNumber  = "ITRK"
)

var infoTagNames = map[string]string{
	TagTitle:        "Title",
	TagArtist:       "Artist",
	TagComment:      "Comment",
	TagCopyright:    "Copyright",
	TagCreationDate: "Creation date",
	TagEngineer:     "Engineer",
	TagGenre:        "Genre",
	TagKeywords:     "Keywords",
	TagMedium:       "Medium",
	TagProduct:      "Product",
	TagSubject:      "Subject",
	TagSoftware:     "Software",
	TagSource:       "Source",
	TagLocation:     "Archival location",
	TagTechnician:   "Technician",
	TagTrackNumber:  "Track number",
	// some writers emit the track number id in lower case
	"itrk": "Track number",
}

// InfoTagName returns the display name of a known INFO identifier.
// Unregistered identifiers are returned as-is.
func InfoTagName(id string) string {
	if name, ok := infoTagNames[id]; ok {
		return name
	}

	return id
}
