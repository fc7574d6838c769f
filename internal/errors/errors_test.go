package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileError(t *testing.T) {
	err := NewFileError("failed to stat file", "/data/roads.shp", FileNotFound, nil)
	assert.Equal(t, "failed to stat file: /data/roads.shp", err.Error())
	assert.Equal(t, "/data/roads.shp", err.Path())
	assert.Equal(t, FileNotFound, err.Kind())
	assert.True(t, IsFileNotFound(err))
	assert.False(t, IsFileAccessDenied(err))
}

func TestLayerError(t *testing.T) {
	cause := fmt.Errorf("bad header")
	err := NewLayerError("failed to open layer", "/data/roads.shp", LayerOpenFailed, cause)
	assert.Contains(t, err.Error(), "failed to open layer")
	assert.Contains(t, err.Error(), "/data/roads.shp")
	assert.Contains(t, err.Error(), "bad header")
	assert.True(t, IsLayerError(err))
	assert.Equal(t, cause, Unwrap(Unwrap(err)))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	base := New("base error")
	wrapped := Wrap(base, "outer context")
	assert.Equal(t, "outer context: base error", wrapped.Error())
	assert.Equal(t, base, Unwrap(wrapped))

	wrapped = Wrapf(base, "outer %s", "formatted")
	assert.Equal(t, "outer formatted: base error", wrapped.Error())
}

func TestKindsThroughChain(t *testing.T) {
	fileErr := NewFileError("file error", "/p", FileAccessDenied, nil)
	wrapped := Wrap(fileErr, "scanning directory")
	assert.True(t, IsFileAccessDenied(wrapped))

	configErr := NewConfigError("config error", "extensions", InvalidConfig, nil)
	assert.True(t, IsInvalidConfig(configErr))
	assert.Equal(t, "extensions", configErr.Param())
}
