package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

func newTestStorage(t *testing.T, maxSize int64) (*ImageStorage, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	logger := zerolog.Nop()
	s, err := NewImageStorage(fs, "/uploads", maxSize, &logger)
	require.NoError(t, err)
	return s, fs
}

// multipartFile 构造一个真实的multipart.FileHeader
func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestNewFileName(t *testing.T) {
	cases := map[string]string{
		"cover.png":        "_cover.png",
		"../../etc/passwd": "_passwd",
		`C:\Users\a\b.jpg`: "_b.jpg",
		"":                 "_image",
		"dir/":             "_image",
	}

	for original, suffix := range cases {
		name := NewFileName(original)
		assert.True(t, strings.HasSuffix(name, suffix), "%q → %q", original, name)
		assert.Len(t, strings.TrimSuffix(name, suffix), 36)
	}

	assert.NotEqual(t, NewFileName("a.png"), NewFileName("a.png"))
}

func TestImageStorage_SaveAndRemove(t *testing.T) {
	s, fs := newTestStorage(t, 0)
	ctx := context.Background()

	name, err := s.Save(ctx, multipartFile(t, "cover.png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_cover.png"))

	data, err := afero.ReadFile(fs, "/uploads/"+name)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Remove(ctx, name))
	ok, err := afero.Exists(fs, "/uploads/"+name)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("删除不存在的文件", func(t *testing.T) {
		assert.NoError(t, s.Remove(ctx, "absent.png"))
	})
}

func TestImageStorage_TooLarge(t *testing.T) {
	s, _ := newTestStorage(t, 4)

	_, err := s.Save(context.Background(), multipartFile(t, "big.png", []byte("0123456789")))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeFileTooLarge))
}

func TestImageStorage_WriteFailure(t *testing.T) {
	logger := zerolog.Nop()
	s := &ImageStorage{fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), dir: "/uploads", logger: &logger}

	_, err := s.SaveReader(context.Background(), "a.png", strings.NewReader("x"))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStorageError))
}
