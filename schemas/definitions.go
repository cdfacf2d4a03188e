package schemas

import (
	"fmt"

	"twitteralchemy/enums"

	"github.com/goccy/go-json"
)

const (
	schemaDraft   = "https://json-schema.org/draft/2020-12/schema"
	schemaBaseURL = "https://twitteralchemy.local/schemas/"
)

// definitions holds one $defs entry per entity. Each entity document refers
// to its own entry, so every compiled schema carries the shared definitions.
//
// Identifiers and counts take an integer or its decimal text. Shape is
// checked here; conversion to int64 and time.Time happens while decoding.
var definitions = fmt.Sprintf(`{
  "integer": {
    "title": "integer or numeric string",
    "oneOf": [
      {"type": "integer"},
      {"type": "string", "pattern": "^-?[0-9]+$"}
    ]
  },
  "text": {"title": "string", "type": ["string", "number"]},
  "string": {"type": "string"},
  "boolean": {
    "title": "boolean",
    "oneOf": [
      {"type": "boolean"},
      {"enum": ["true", "false"]}
    ]
  },
  "timestamp": {"title": "datetime", "type": ["string", "number"]},

  "tweet_public_metrics": {
    "type": "object",
    "properties": {
      "retweet_count": {"$ref": "#/$defs/integer"},
      "reply_count": {"$ref": "#/$defs/integer"},
      "like_count": {"$ref": "#/$defs/integer"},
      "quote_count": {"$ref": "#/$defs/integer"},
      "impression_count": {"$ref": "#/$defs/integer"},
      "bookmark_count": {"$ref": "#/$defs/integer"}
    },
    "additionalProperties": false
  },
  "user_public_metrics": {
    "type": "object",
    "properties": {
      "followers_count": {"$ref": "#/$defs/integer"},
      "following_count": {"$ref": "#/$defs/integer"},
      "tweet_count": {"$ref": "#/$defs/integer"},
      "listed_count": {"$ref": "#/$defs/integer"},
      "like_count": {"$ref": "#/$defs/integer"}
    },
    "additionalProperties": false
  },
  "coordinates": {
    "type": "object",
    "properties": {
      "type": {"$ref": "#/$defs/string"},
      "coordinates": {}
    },
    "additionalProperties": false
  },
  "geo": {
    "type": "object",
    "properties": {
      "coordinates": {"$ref": "#/$defs/coordinates"},
      "place_id": {"$ref": "#/$defs/text"}
    },
    "additionalProperties": false
  },
  "referenced_tweet": {
    "type": "object",
    "properties": {
      "id": {"$ref": "#/$defs/integer"},
      "type": {"enum": %[1]s}
    },
    "required": ["id", "type"],
    "additionalProperties": false
  },

  "tweet": {
    "type": "object",
    "properties": {
      "id": {"$ref": "#/$defs/integer"},
      "text": {"$ref": "#/$defs/string"},
      "created_at": {"$ref": "#/$defs/timestamp"},
      "author_id": {"$ref": "#/$defs/integer"},
      "conversation_id": {"$ref": "#/$defs/integer"},
      "in_reply_to_user_id": {"$ref": "#/$defs/integer"},
      "referenced_tweets": {
        "type": "array",
        "items": {"$ref": "#/$defs/referenced_tweet"}
      },
      "public_metrics": {"$ref": "#/$defs/tweet_public_metrics"},
      "possibly_sensitive": {"$ref": "#/$defs/boolean"},
      "lang": {"$ref": "#/$defs/string"},
      "reply_settings": {"enum": %[2]s},
      "source": {"$ref": "#/$defs/string"},
      "geo": {"$ref": "#/$defs/geo"}
    },
    "required": ["id"]
  },
  "user": {
    "type": "object",
    "properties": {
      "id": {"$ref": "#/$defs/integer"},
      "name": {"$ref": "#/$defs/string"},
      "username": {"$ref": "#/$defs/string"},
      "created_at": {"$ref": "#/$defs/timestamp"},
      "protected": {"$ref": "#/$defs/boolean"},
      "location": {"$ref": "#/$defs/string"},
      "url": {"$ref": "#/$defs/string"},
      "description": {"$ref": "#/$defs/string"},
      "verified": {"$ref": "#/$defs/boolean"},
      "public_metrics": {"$ref": "#/$defs/user_public_metrics"},
      "pinned_tweet_id": {"$ref": "#/$defs/integer"},
      "profile_image_url": {"$ref": "#/$defs/string"}
    },
    "required": ["id", "name", "username"]
  },
  "media": {
    "type": "object",
    "properties": {
      "media_key": {"$ref": "#/$defs/text"},
      "type": {"enum": %[3]s},
      "url": {"$ref": "#/$defs/string"},
      "duration_ms": {"$ref": "#/$defs/integer"},
      "height": {"$ref": "#/$defs/integer"},
      "width": {"$ref": "#/$defs/integer"},
      "preview_image_url": {"$ref": "#/$defs/string"},
      "alt_text": {"$ref": "#/$defs/string"}
    }
  },
  "poll": {
    "type": "object",
    "properties": {
      "id": {"$ref": "#/$defs/text"},
      "options": {
        "type": "array",
        "items": {"type": "object"}
      },
      "duration_minutes": {"$ref": "#/$defs/integer"},
      "end_datetime": {"$ref": "#/$defs/string"},
      "voting_status": {"enum": %[4]s}
    },
    "required": ["id"]
  },
  "place": {
    "type": "object",
    "properties": {
      "full_name": {"$ref": "#/$defs/string"},
      "id": {"$ref": "#/$defs/text"},
      "contained_within": {
        "type": "array",
        "items": {"$ref": "#/$defs/text"}
      },
      "country": {"$ref": "#/$defs/string"},
      "country_code": {"$ref": "#/$defs/string"},
      "name": {"$ref": "#/$defs/string"},
      "place_type": {"$ref": "#/$defs/string"}
    },
    "required": ["full_name", "id"]
  },
  "includes": {
    "type": "object",
    "properties": {
      "tweets": {"type": "array", "items": {"$ref": "#/$defs/tweet"}},
      "users": {"type": "array", "items": {"$ref": "#/$defs/user"}},
      "places": {"type": "array", "items": {"$ref": "#/$defs/place"}},
      "media": {"type": "array", "items": {"$ref": "#/$defs/media"}},
      "polls": {"type": "array", "items": {"$ref": "#/$defs/poll"}}
    }
  }
}`,
	enumJSON(enums.ReferencedTweetTypes),
	enumJSON(enums.ReplySettingsValues),
	enumJSON(enums.MediaTypes),
	enumJSON(enums.PollVotingStatuses),
)

func enumJSON[T ~string](values []T) string {
	b, err := json.Marshal(enums.Strings(values))
	if err != nil {
		panic(err)
	}
	return string(b)
}

// document wraps definitions into a schema whose root is the named entry.
func document(name string) string {
	return fmt.Sprintf(
		`{"$schema": %q, "$ref": "#/$defs/%s", "$defs": %s}`,
		schemaDraft, name, definitions,
	)
}
