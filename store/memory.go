package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory keeps documents in process. It round-trips every document
// through BSON so callers see the same decoding rules as with Mongo.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: map[string][]bson.M{}}
}

func (m *Memory) Insert(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	oid, ok := stored["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		stored["_id"] = oid
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return oid.Hex(), nil
}

func (m *Memory) ListNewestFirst(_ context.Context, collection string, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("list %s: out must be a pointer to a slice, got %T", collection, out)
	}

	// documents are shared with SetFields, so encode them before unlocking
	m.mu.RLock()
	docs := make([]encoded, 0, len(m.collections[collection]))
	for _, doc := range m.collections[collection] {
		raw, err := bson.Marshal(doc)
		if err != nil {
			m.mu.RUnlock()
			return fmt.Errorf("decode %s: %w", collection, err)
		}
		docs = append(docs, encoded{raw: raw, createdAt: createdAt(doc), id: docID(doc)})
	}
	m.mu.RUnlock()

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].createdAt != docs[j].createdAt {
			return docs[i].createdAt > docs[j].createdAt
		}
		return docs[i].id.Hex() > docs[j].id.Hex()
	})

	slice := rv.Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(doc.raw, elem.Interface()); err != nil {
			return fmt.Errorf("decode %s: %w", collection, err)
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}

func (m *Memory) SetFields(_ context.Context, collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.collections[collection] {
		if docID(doc) == oid {
			for k, v := range fields {
				doc[k] = v
			}
			break
		}
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.collections[collection]
	for i, doc := range docs {
		if docID(doc) == oid {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			break
		}
	}
	return nil
}

type encoded struct {
	raw       []byte
	createdAt primitive.DateTime
	id        primitive.ObjectID
}

func createdAt(doc bson.M) primitive.DateTime {
	dt, _ := doc["created_at"].(primitive.DateTime)
	return dt
}

func docID(doc bson.M) primitive.ObjectID {
	oid, _ := doc["_id"].(primitive.ObjectID)
	return oid
}
