package schemas

// Includes bundles the entities side-loaded with a response through
// expansions. A nil list means the expansion was not requested; an empty,
// non-nil list means it was requested and nothing matched.
type Includes struct {
	Tweets []*Tweet `json:"tweets"`
	Users  []*User  `json:"users"`
	Places []*Place `json:"places"`
	Media  []*Media `json:"media"`
	Polls  []*Poll  `json:"polls"`
}

func NewIncludes(raw map[string]any) (*Includes, error) {
	return includesEntity.validate(raw)
}

func decodeIncludes(o *object) *Includes {
	return &Includes{
		Tweets: decodeList(o, "tweets", decodeTweet),
		Users:  decodeList(o, "users", decodeUser),
		Places: decodeList(o, "places", decodePlace),
		Media:  decodeList(o, "media", decodeMedia),
		Polls:  decodeList(o, "polls", decodePoll),
	}
}

func decodeList[T any](o *object, key string, decode func(*object) T) []T {
	list := []T{}
	present := o.objects(key, func(item *object) {
		list = append(list, decode(item))
	})
	if !present {
		return nil
	}
	return list
}

func (includes *Includes) ToDict() Dict {
	return Dict{
		"tweets": flattenList(includes.Tweets, Flattener.ToDict),
		"users":  flattenList(includes.Users, Flattener.ToDict),
		"places": flattenList(includes.Places, Flattener.ToDict),
		"media":  flattenList(includes.Media, Flattener.ToDict),
		"polls":  flattenList(includes.Polls, Flattener.ToDict),
	}
}

func (includes *Includes) ToFullDict() Dict {
	return Dict{
		"tweets": flattenList(includes.Tweets, Flattener.ToFullDict),
		"users":  flattenList(includes.Users, Flattener.ToFullDict),
		"places": flattenList(includes.Places, Flattener.ToFullDict),
		"media":  flattenList(includes.Media, Flattener.ToFullDict),
		"polls":  flattenList(includes.Polls, Flattener.ToFullDict),
	}
}

// flattenList keeps the nil/empty distinction of items in its result.
func flattenList[T Flattener](items []T, flatten func(Flattener) Dict) any {
	if items == nil {
		return nil
	}
	dicts := make([]Dict, 0, len(items))
	for _, item := range items {
		dicts = append(dicts, flatten(item))
	}
	return dicts
}
