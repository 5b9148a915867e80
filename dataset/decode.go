// File: decode.go
// Role: Decode / LoadFile / Encode and post-load validation.

package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Option configures decoding.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that reports dropped connections.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Decode reads a dataset in the given format from r.
//
// Connections whose endpoints are not declared users are dropped with a
// warning and counted in Dropped. A missing or zero capacity becomes
// DefaultCapacity.
func Decode(r io.Reader, format Format, opts ...Option) (*Dataset, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: read")
	}

	ds := &Dataset{}
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, ds)
	case FormatTOML:
		err = toml.Unmarshal(data, ds)
	case FormatYAML:
		err = yaml.Unmarshal(data, ds)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "dataset: %s", format), ErrDecode)
	}

	if err := ds.normalize(o.logger); err != nil {
		return nil, err
	}

	return ds, nil
}

// LoadFile reads path from fs, choosing the format by extension.
func LoadFile(fs afero.Fs, path string, opts ...Option) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}

	return Decode(bytes.NewReader(data), format, opts...)
}

// Encode writes ds to w in the given format.
func Encode(w io.Writer, format Format, ds *Dataset) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(ds), "dataset: encode json")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(ds), "dataset: encode toml")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return errors.Wrap(err, "dataset: encode yaml")
		}

		return errors.Wrap(enc.Close(), "dataset: encode yaml")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// normalize applies defaults, rejects duplicate users and invalid
// publications, and drops dangling connections.
func (ds *Dataset) normalize(logger *slog.Logger) error {
	if ds.Capacity <= 0 {
		ds.Capacity = DefaultCapacity
	}

	known := make(map[int64]bool, len(ds.Users))
	for _, u := range ds.Users {
		if known[u.ID] {
			return errors.Wrapf(ErrDuplicateUser, "id %d", u.ID)
		}
		known[u.ID] = true
	}

	for _, p := range ds.Publications {
		if p.Size <= 0 || p.Likes < 0 || p.Comments < 0 {
			return errors.Wrapf(ErrInvalidPublication, "id %d", p.ID)
		}
	}

	kept := ds.Connections[:0]
	for _, c := range ds.Connections {
		if !known[c.From] || !known[c.To] {
			logger.Warn("dropping connection to unknown user", "from", c.From, "to", c.To)
			ds.Dropped++

			continue
		}
		kept = append(kept, c)
	}
	ds.Connections = kept

	return nil
}
