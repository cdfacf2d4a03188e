package schemas

import (
	"slices"

	"github.com/guregu/null/v6"
)

type Place struct {
	FullName        string      `json:"full_name"`
	ID              string      `json:"id"`
	ContainedWithin []string    `json:"contained_within"`
	Country         null.String `json:"country"`
	CountryCode     null.String `json:"country_code"`
	Geo             any         `json:"geo"`
	Name            null.String `json:"name"`
	PlaceType       null.String `json:"place_type"`
}

func NewPlace(raw map[string]any) (*Place, error) {
	return placeEntity.validate(raw)
}

func decodePlace(o *object) *Place {
	return &Place{
		FullName:        o.requiredStr("full_name"),
		ID:              o.requiredText("id"),
		ContainedWithin: o.strList("contained_within"),
		Country:         o.str("country"),
		CountryCode:     o.str("country_code"),
		Geo:             o.opaque("geo"),
		Name:            o.str("name"),
		PlaceType:       o.str("place_type"),
	}
}

func (place *Place) ToDict() Dict {
	var containedWithin any
	if place.ContainedWithin != nil {
		containedWithin = slices.Clone(place.ContainedWithin)
	}
	return Dict{
		"full_name":        place.FullName,
		"id":               place.ID,
		"contained_within": containedWithin,
		"country":          nullString(place.Country),
		"country_code":     nullString(place.CountryCode),
		"geo":              blob(place.Geo),
		"name":             nullString(place.Name),
		"place_type":       nullString(place.PlaceType),
	}
}

func (place *Place) ToFullDict() Dict {
	return place.ToDict()
}
