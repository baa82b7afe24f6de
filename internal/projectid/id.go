package projectid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID identifies a project within one scheduling run. The zero value is the
// "no project" sentinel and is never produced by New, FromGUID or FromName.
//
// IDs derived from a display name live apart from declared ones: FromName("x")
// never equals New("x"), although both print as "x".
type ID struct {
	key   string
	named bool
}

// ErrEmpty is returned when an identifier would be empty.
var ErrEmpty = errors.New("project identifier cannot be empty")

// New wraps an arbitrary token (path, hash, name) as an ID. Surrounding
// whitespace is trimmed; the token is otherwise kept verbatim.
func New(token string) (ID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ID{}, ErrEmpty
	}
	return ID{key: token}, nil
}

// MustNew is New for identifiers known to be valid, such as test fixtures.
func MustNew(token string) ID {
	id, err := New(token)
	if err != nil {
		panic(err)
	}
	return id
}

// FromName derives an ID for a project that declares no identifier of its own.
func FromName(name string) (ID, error) {
	id, err := New(name)
	if err != nil {
		return ID{}, err
	}
	id.named = true
	return id, nil
}

// MustFromName is FromName for names known to be valid.
func MustFromName(name string) ID {
	id, err := FromName(name)
	if err != nil {
		panic(err)
	}
	return id
}

// FromGUID parses a GUID in any of the usual spellings (braced, urn-prefixed,
// upper or lower case) and returns an ID keyed by its canonical form, so two
// spellings of the same GUID yield equal IDs.
func FromGUID(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID{}, ErrEmpty
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return ID{}, fmt.Errorf("invalid project GUID %q: %w", raw, err)
	}
	return ID{key: u.String()}, nil
}

// IsGUID reports whether raw would be accepted by FromGUID.
func IsGUID(raw string) bool {
	return uuid.Validate(strings.TrimSpace(raw)) == nil
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.key == ""
}

// IsNamed reports whether id was derived from a display name.
func (id ID) IsNamed() bool {
	return id.named
}

// String returns the identifier's canonical text.
func (id ID) String() string {
	return id.key
}

// MarshalText lets IDs appear as plain strings in JSON output.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.key), nil
}
