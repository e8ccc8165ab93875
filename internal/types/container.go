package types

// Container identifies the kind of tag container a prober understands.
type Container int

const (
	// ContainerUnknown represents an unrecognized container.
	ContainerUnknown Container = iota
	// ContainerID3v2 represents an ID3v2 tag prepended to the file.
	ContainerID3v2
	// ContainerMP4 represents iTunes-style metadata atoms in an MP4 file.
	ContainerMP4
	// ContainerFLAC represents Vorbis comments in a FLAC stream.
	ContainerFLAC
)

// String returns the conventional name of the container.
func (c Container) String() string {
	switch c {
	case ContainerID3v2:
		return "ID3v2"
	case ContainerMP4:
		return "MP4"
	case ContainerFLAC:
		return "FLAC"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for files carrying this container.
func (c Container) Extensions() []string {
	switch c {
	case ContainerID3v2:
		return []string{".mp3"}
	case ContainerMP4:
		return []string{".m4a", ".mp4", ".m4b", ".m4p"}
	case ContainerFLAC:
		return []string{".flac"}
	default:
		return nil
	}
}
