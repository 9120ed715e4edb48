package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAssetURL(t *testing.T) {
	t.Run("base without trailing slash", func(t *testing.T) {
		assert.Equal(t, "http://localhost:3333/uploads/lampadas.svg",
			JoinAssetURL("http://localhost:3333/uploads", "lampadas.svg"))
	})

	t.Run("base with trailing slash", func(t *testing.T) {
		assert.Equal(t, "http://localhost:3333/uploads/lampadas.svg",
			JoinAssetURL("http://localhost:3333/uploads/", "lampadas.svg"))
	})

	t.Run("image with leading slash", func(t *testing.T) {
		assert.Equal(t, "http://localhost:3333/uploads/oleo.svg",
			JoinAssetURL("http://localhost:3333/uploads/", "/oleo.svg"))
	})
}
