package id3v2

// v22IDs maps the ID3v2.2 identifiers we care about to their ID3v2.3+
// equivalents.
var v22IDs = map[string]string{
	"TT2": "TIT2", // Title
	"TP1": "TPE1", // Artist
	"TAL": "TALB", // Album
	"TRK": "TRCK", // Track number/total
	"TPA": "TPOS", // Disc number/total
}

// normalizeID returns the canonical 4-character identifier for a frame.
// Only version 2 identifiers are remapped; everything else is returned
// unchanged.
func normalizeID(major byte, id string) string {
	if major != 2 {
		return id
	}
	if canonical, ok := v22IDs[id]; ok {
		return canonical
	}
	return id
}
