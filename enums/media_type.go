package enums

type MediaType string

const (
	MediaTypeAnimatedGIF MediaType = "animated_gif"
	MediaTypePhoto       MediaType = "photo"
	MediaTypeVideo       MediaType = "video"
)

var MediaTypes = []MediaType{
	MediaTypeAnimatedGIF,
	MediaTypePhoto,
	MediaTypeVideo,
}

func ParseMediaType(value string) (MediaType, bool) {
	return parse(MediaTypes, value)
}
