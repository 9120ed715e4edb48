package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ahaavila/e-colect/pkg/utils"
)

const MaxUploadSize = 5 << 20 // 5 MB

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
}

// Store persists uploaded images on local disk and hands back the stored
// filename, which is the reference kept on points and items.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes one multipart file into the store under a collision-free
// name and returns that name. Rejects non-image extensions and files over
// MaxUploadSize.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", utils.ErrMissingImage
	}
	if file.Size > MaxUploadSize {
		return "", utils.ErrInvalidImage
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", utils.ErrInvalidImage
	}

	name := uuid.New().String() + "-" + sanitizeFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing stored file: %w", err)
	}

	return name, nil
}

// sanitizeFilename strips path components and whitespace so the stored
// name is safe to serve back as a static asset path.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
