package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateMultipartBody writes a single file part under field plus the given
// plain form values and returns the body with its content type
func CreateMultipartBody(t *testing.T, field, fileName string, content []byte, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if fileName != "" {
		part, err := writer.CreateFormFile(field, fileName)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
