package schemas

import (
	"twitteralchemy/enums"

	"github.com/guregu/null/v6"
)

type Media struct {
	MediaKey        null.String     `json:"media_key"`
	Type            enums.MediaType `json:"type"`
	URL             null.String     `json:"url"`
	DurationMS      null.Int        `json:"duration_ms"`
	Height          null.Int        `json:"height"`
	Width           null.Int        `json:"width"`
	PreviewImageURL null.String     `json:"preview_image_url"`
	PublicMetrics   any             `json:"public_metrics"`
	AltText         null.String     `json:"alt_text"`
}

func NewMedia(raw map[string]any) (*Media, error) {
	return mediaEntity.validate(raw)
}

func decodeMedia(o *object) *Media {
	return &Media{
		MediaKey:        o.text("media_key"),
		Type:            enumField(o, "type", enums.ParseMediaType),
		URL:             o.str("url"),
		DurationMS:      o.integer("duration_ms"),
		Height:          o.integer("height"),
		Width:           o.integer("width"),
		PreviewImageURL: o.str("preview_image_url"),
		PublicMetrics:   o.opaque("public_metrics"),
		AltText:         o.str("alt_text"),
	}
}

func (media *Media) ToDict() Dict {
	return Dict{
		"media_key":         nullString(media.MediaKey),
		"type":              enumString(media.Type),
		"url":               nullString(media.URL),
		"duration_ms":       nullInt(media.DurationMS),
		"height":            nullInt(media.Height),
		"width":             nullInt(media.Width),
		"preview_image_url": nullString(media.PreviewImageURL),
		"public_metrics":    blob(media.PublicMetrics),
		"alt_text":          nullString(media.AltText),
	}
}

// ToFullDict is the same as ToDict: media has no persisted subset yet.
func (media *Media) ToFullDict() Dict {
	return media.ToDict()
}
