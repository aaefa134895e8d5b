package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/achilleasa/diorama/asset"
	"github.com/achilleasa/diorama/log"
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/scene/world"
)

// The scene name that selects the built-in diorama.
const BuiltinDiorama = "builtin:diorama"

var ErrUnsupportedFormat = errors.New("reader: unsupported scene file format")

var logger = log.New("scene reader")

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from file or URL. The special name "builtin:diorama" returns
// the built-in diorama scene.
func ReadScene(filename string) (*scene.Scene, error) {
	if filename == BuiltinDiorama {
		logger.Info("using built-in diorama scene")
		return world.Diorama(nil), nil
	}

	// Select reader based on file extension
	var reader Reader
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".json"):
		reader = newJSONReader()
	default:
		return nil, ErrUnsupportedFormat
	}

	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	sc, err := reader.Read(res)
	if err != nil {
		return nil, fmt.Errorf("reader: %s: %v", res.Path(), err)
	}
	return sc, nil
}
