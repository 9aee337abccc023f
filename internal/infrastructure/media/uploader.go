package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an uploaded file and returns its public URL. A nil file
// means nothing was uploaded; implementations return an empty URL and no
// error in that case.
type Uploader interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}

// LocalUploader writes uploads to a directory served as static files.
type LocalUploader struct {
	dir     string
	baseURL string
}

// NewLocalUploader は保存先ディレクトリと公開 URL プレフィックスを束縛した
// LocalUploader を生成する。
func NewLocalUploader(dir, baseURL string) *LocalUploader {
	return &LocalUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save はアップロードされたファイルを UUID ベースのファイル名で保存し、
// 公開 URL を返す。file が nil の場合は空文字列を返す。
func (u *LocalUploader) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if file == nil || header == nil {
		return "", nil
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return u.baseURL + path.Join("/", u.dir, name), nil
}
