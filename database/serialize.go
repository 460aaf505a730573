package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize converts a stored document into a transport-safe map: the
// store-native identifier becomes a plain hex string and every
// timestamp-typed value becomes an RFC 3339 string. Conversion recurses
// into embedded documents and arrays, so a timestamp added to a nested
// structure later cannot slip through unconverted. Serializing an
// already-serialized document changes nothing, and a nil document comes
// back nil.
func Serialize(doc bson.M) map[string]interface{} {
	if doc == nil {
		return nil
	}
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = serializeValue(v)
	}
	return out
}

func serializeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case bson.M:
		return Serialize(t)
	case map[string]interface{}:
		return Serialize(bson.M(t))
	case bson.D:
		return Serialize(t.Map())
	case bson.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = serializeValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = serializeValue(e)
		}
		return out
	default:
		return v
	}
}
