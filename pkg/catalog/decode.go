package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions Decode understands.
var Extensions = []string{".json", ".toml", ".yaml", ".yml"}

// Supported reports whether name has a catalog file extension.
func Supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

// Decode parses data according to the extension of name.
func Decode(name string, data []byte) (File, error) {
	var file File
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&file)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case ".toml":
		var meta toml.MetaData
		meta, err = toml.Decode(string(data), &file)
		if err == nil {
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	default:
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return File{}, fmt.Errorf("catalog: decode %s: %w", name, err)
	}
	return file, nil
}
