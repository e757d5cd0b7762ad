package kernel_test

import (
	"testing"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownUUID = "9f1c8a2e-4b3d-47a1-8f60-1d2e3c4b5a69"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should not repeat identifiers", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(knownUUID)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, knownUUID, id.String())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"PO-2025-0001",
			"9f1c8a2e-4b3d-47a1-8f60",
			"9f1c8a2e-4b3d-47a1-8f60-1d2e3c4b5a69-00",
			"zz1c8a2e-4b3d-47a1-8f60-1d2e3c4b5a69",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through the binary form", func(t *testing.T) {
		original, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		// The same path the repositories take when scanning uuid columns.
		raw := original.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x9f, 0x1c, 0x8a})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match identifiers parsed from the same text", func(t *testing.T) {
		id1, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)
		id2, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
		assert.True(t, id2.IsEqual(id1))
	})

	t.Run("should treat two zero values as equal", func(t *testing.T) {
		var id1, id2 kernel.UUID

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should fail for explicitly nil identifier", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
