package scene

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/chazu/planar/pkg/geom"
)

// namespace scopes every ShapeID so identical payloads from other tools
// never collide with ours.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/chazu/planar/shape"))

// ShapeID is a content-addressed identifier: the same kind, name and
// geometry always hash to the same ID.
type ShapeID uuid.UUID

// ZeroID is the unset ShapeID.
var ZeroID ShapeID

// NewShapeID derives the ID of a named shape from its kind and canonical
// JSON encoding.
func NewShapeID(name string, s geom.Shape) ShapeID {
	payload, err := json.Marshal(s)
	if err != nil {
		// geom values are flat numeric records; fall back to the printed form.
		payload = []byte(describe(s))
	}
	var b strings.Builder
	b.WriteString(s.Kind().String())
	b.WriteByte('/')
	b.WriteString(name)
	b.WriteByte('/')
	b.Write(payload)
	return ShapeID(uuid.NewSHA1(namespace, []byte(b.String())))
}

// IsZero reports whether id is unset.
func (id ShapeID) IsZero() bool { return id == ZeroID }

func (id ShapeID) String() string { return uuid.UUID(id).String() }

// Short returns the first 8 hex characters of the ID.
func (id ShapeID) Short() string { return id.String()[:8] }

func (id ShapeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ShapeID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = ShapeID(u)
	return nil
}
