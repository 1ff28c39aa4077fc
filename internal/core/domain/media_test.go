package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	encoded, err := EncodeMedia(strings.NewReader(string(payload)), "image/jpeg")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "data:image/jpeg;base64,"))

	decoded, err := DecodeMediaPayload(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestEncodeMediaReadFailure(t *testing.T) {
	_, err := EncodeMedia(failingReader{}, "image/png")
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestDecodeMediaPayloadMissingSegment(t *testing.T) {
	for _, input := range []string{"", "data:image/png;base64", "nonsense"} {
		_, err := DecodeMediaPayload(input)
		require.ErrorIs(t, err, ErrInvalidMediaPayload, "input %q", input)
	}
}

func TestDecodeMediaPayloadBadBase64(t *testing.T) {
	_, err := DecodeMediaPayload("data:image/png;base64,@@@not-base64@@@")
	require.ErrorIs(t, err, ErrInvalidMediaPayload)
}
