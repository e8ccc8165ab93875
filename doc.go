// Package musicfarm reads the tags of music files and files them into a
// browsable farm of links.
//
// The farm mirrors a music collection twice, by album and by artist,
// without copying audio:
//
//	farm/albums/<album>/<track>_<title>.<ext>
//	farm/artists/<artist>/<album>/<track>_<title>.<ext>
//
// # Quick Start
//
// Reading the tags of one file:
//
//	tags, container, err := musicfarm.ReadFile("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if tags == nil {
//		log.Fatal("no tags")
//	}
//	fmt.Printf("%s: %s - %s\n", container, tags.Artist, tags.Title)
//
// # Tag Containers
//
//   - ID3v2.2, ID3v2.3 and ID3v2.4 tags at the start of a file
//   - iTunes metadata atoms in MP4/M4A files
//   - Vorbis comments in FLAC streams
//
// Each container has a Prober. Probers are tried in order and the first
// one that recognizes its container wins, even when the tag it finds is
// empty. A nil *Tags therefore means no known container was present,
// while an empty Tags means one was present but held nothing usable.
//
// # Damaged Tags
//
// Corrupt or truncated ID3v2 frames end the frame walk without failing
// the read; the frames decoded before the damage are returned. Errors are
// reserved for I/O failures of the underlying file.
//
// # Concurrency
//
// ReadMany probes several files at once:
//
//	all, err := musicfarm.ReadMany(ctx, paths...)
//
// The cmd/musicfarm command walks a whole music tree the same way and
// places the links.
package musicfarm
