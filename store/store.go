// Package store is the document store behind the orders, inquiries and
// suggestions collections.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	Orders      = "orders"
	Inquiries   = "inquiries"
	Suggestions = "suggestions"
)

// ErrInvalidID is returned when an id is not a well-formed document id.
var ErrInvalidID = errors.New("invalid document id")

// Documents is the narrow set of operations the handlers need.
//
// SetFields and Delete do not report missing documents: a well-formed id
// that matches nothing is a successful no-op.
type Documents interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	ListNewestFirst(ctx context.Context, collection string, out any) error
	SetFields(ctx context.Context, collection, id string, fields bson.M) error
	Delete(ctx context.Context, collection, id string) error
}

// ValidID reports whether id is a well-formed document id.
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
