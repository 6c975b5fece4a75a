package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const MountPath = "/uploads"

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// DiskStorage writes uploads under a local directory served at MountPath.
type DiskStorage struct {
	dir string
}

func NewDisk(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{dir: dir}, nil
}

func (d *DiskStorage) Dir() string {
	return d.dir
}

func (d *DiskStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeName(filename))
	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}

	return MountPath + "/" + name, nil
}

func sanitizeName(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	base = unsafeNameChars.ReplaceAllString(base, "-")
	if base == "" || base == "." {
		return "file"
	}
	return base
}
