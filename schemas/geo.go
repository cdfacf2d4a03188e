package schemas

import "github.com/guregu/null/v6"

// Coordinates is the exact location a tweet was posted from. The pair
// itself ([longitude, latitude]) is kept as sent.
type Coordinates struct {
	Type        null.String `json:"type"`
	Coordinates any         `json:"coordinates"`
}

type Geo struct {
	Coordinates Coordinates `json:"coordinates"`
	PlaceID     null.String `json:"place_id"`
}

func decodeGeo(o *object) Geo {
	coords := o.child("coordinates")
	return Geo{
		Coordinates: Coordinates{
			Type:        coords.str("type"),
			Coordinates: coords.opaque("coordinates"),
		},
		PlaceID: o.text("place_id"),
	}
}
