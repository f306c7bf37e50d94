package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// ImageStorage 图书封面存储
// 设计说明：
// 1. 基于afero文件系统抽象，生产使用OsFs，测试使用MemMapFs
// 2. 文件名：<uuid>_<原始文件名>，创建和更新共用同一命名规则
// 3. 写入失败返回错误，不允许静默失败
type ImageStorage struct {
	fs      afero.Fs
	dir     string
	maxSize int64
	logger  *zerolog.Logger
}

// NewImageStorage 创建封面存储，目录不存在时自动创建
// maxSize<=0表示不限制大小
func NewImageStorage(fs afero.Fs, dir string, maxSize int64, logger *zerolog.Logger) (*ImageStorage, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &ImageStorage{
		fs:      fs,
		dir:     dir,
		maxSize: maxSize,
		logger:  logger,
	}, nil
}

// NewFileName 生成存储文件名
// 只保留原始文件名的最后一段，防止目录穿越
func NewFileName(original string) string {
	base := original
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == ".." {
		base = "image"
	}
	return uuid.NewString() + "_" + base
}

// Save 保存上传的文件，返回存储后的文件名
func (s *ImageStorage) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", apperrors.New(apperrors.ErrCodeFileTooLarge,
			fmt.Sprintf("图片大小不能超过%dKB", s.maxSize/1024))
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "读取上传文件失败")
	}
	defer src.Close()

	return s.SaveReader(ctx, fh.Filename, src)
}

// SaveReader 从reader写入文件
func (s *ImageStorage) SaveReader(ctx context.Context, original string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := NewFileName(original)
	path := filepath.Join(s.dir, name)

	dst, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "保存图片失败")
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		s.fs.Remove(path)
		return "", apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "保存图片失败")
	}
	if err := dst.Close(); err != nil {
		s.fs.Remove(path)
		return "", apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "保存图片失败")
	}

	s.logger.Debug().Str("file", name).Msg("图片已保存")
	return name, nil
}

// Remove 删除文件，文件不存在视为成功
func (s *ImageStorage) Remove(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	err := s.fs.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "删除图片失败")
	}
	return nil
}
