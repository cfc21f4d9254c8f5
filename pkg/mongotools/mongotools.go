package mongotools

import (
	"context"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prepbuddy/prepbuddy/pkg/errors"
)

func ID(id string) bson.M {
	return bson.M{"_id": id}
}

// Path joins nested document keys with the mongo dot separator.
func Path(keys ...string) string {
	return strings.Join(keys, ".")
}

func Index(field string, i int) string {
	return field + "." + strconv.Itoa(i)
}

type field struct {
	key string
	val any
	set bool
}

// Field makes a $set entry for SetAll. A nil value means "leave as is".
func Field[T any](key string, val *T) field {
	if val == nil {
		return field{key: key}
	}
	return field{key: key, val: *val, set: true}
}

func SetAll(fields ...field) bson.M {
	set := bson.M{}
	for _, f := range fields {
		if f.set {
			set[f.key] = f.val
		}
	}
	return bson.M{"$set": set}
}

// All drains the cursor, decoding every document into T.
func All[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer func() { _ = cur.Close(ctx) }()

	var out []T
	for cur.Next(ctx) {
		var doc T

		err := cur.Decode(&doc)
		if err != nil {
			return nil, errors.WrapFail(err, "decode document")
		}

		out = append(out, doc)
	}

	return out, errors.WrapFail(cur.Err(), "iterate cursor")
}
