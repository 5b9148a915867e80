// File: types.go
// Role: on-disk record types, formats and sentinel errors.

package dataset

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultCapacity is the front-page size used when a dataset sets none.
const DefaultCapacity = 100

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for a format or file extension we cannot read.
	ErrUnknownFormat = errors.New("dataset: unknown format")

	// ErrDecode wraps any parser failure.
	ErrDecode = errors.New("dataset: decode failed")

	// ErrDuplicateUser is returned when two users share an ID.
	ErrDuplicateUser = errors.New("dataset: duplicate user id")

	// ErrInvalidPublication is returned for a publication with a non-positive
	// size or negative counts.
	ErrInvalidPublication = errors.New("dataset: invalid publication")
)

// Format names a serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "extension of %q", path)
	}
}

// User is a member of the network.
type User struct {
	ID   int64  `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
}

// Connection is a directed, weighted link From→To between two users.
type Connection struct {
	From   int64 `json:"from" toml:"from" yaml:"from"`
	To     int64 `json:"to" toml:"to" yaml:"to"`
	Weight int64 `json:"weight" toml:"weight" yaml:"weight"`
}

// Publication is a front-page candidate.
type Publication struct {
	ID       int64 `json:"id" toml:"id" yaml:"id"`
	Likes    int64 `json:"likes" toml:"likes" yaml:"likes"`
	Comments int64 `json:"comments" toml:"comments" yaml:"comments"`
	Size     int   `json:"size" toml:"size" yaml:"size"`
}

// Benefit weighs comments five times as much as likes: 10·comments + 2·likes.
func (p Publication) Benefit() int64 { return 10*p.Comments + 2*p.Likes }

// Group is a community needing one administrator.
type Group struct {
	ID   int64  `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
}

// Administrator can run groups; Efficiency[j] is their score on Groups[j].
type Administrator struct {
	ID         int64  `json:"id" toml:"id" yaml:"id"`
	Name       string `json:"name" toml:"name" yaml:"name"`
	Efficiency []int  `json:"efficiency" toml:"efficiency" yaml:"efficiency"`
}

// Dataset is everything one run of the toolkit reads.
type Dataset struct {
	Capacity       int             `json:"capacity" toml:"capacity" yaml:"capacity"`
	Users          []User          `json:"users" toml:"users" yaml:"users"`
	Connections    []Connection    `json:"connections" toml:"connections" yaml:"connections"`
	Publications   []Publication   `json:"publications,omitempty" toml:"publications,omitempty" yaml:"publications,omitempty"`
	Groups         []Group         `json:"groups,omitempty" toml:"groups,omitempty" yaml:"groups,omitempty"`
	Administrators []Administrator `json:"administrators,omitempty" toml:"administrators,omitempty" yaml:"administrators,omitempty"`

	// Dropped counts connections discarded for referencing unknown users.
	Dropped int `json:"-" toml:"-" yaml:"-"`
}
