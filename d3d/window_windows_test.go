//go:build windows && amd64

package d3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSizeInvalidWindow(t *testing.T) {
	_, _, err := ClientSize(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GetClientRect")
}
