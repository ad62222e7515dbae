package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
)

const sniffLen = 512

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type fileStore interface {
	SaveStream(name string, r io.Reader) (string, error)
	Delete(name string) error
}

type uploadMetrics interface {
	AddUploadBytes(n int64)
}

// UploadConfig limits what the upload endpoint accepts.
type UploadConfig struct {
	MaxBytes     int64
	AllowedMIMEs []string
	PublicPrefix string
}

// UploadService stores admin uploaded images under generated names.
type UploadService struct {
	store   fileStore
	metrics uploadMetrics
	cfg     UploadConfig
	allowed map[string]struct{}
	logger  *zap.Logger
}

// NewUploadService constructs an UploadService.
func NewUploadService(store fileStore, metrics uploadMetrics, cfg UploadConfig, logger *zap.Logger) *UploadService {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 5 * 1024 * 1024
	}
	if cfg.PublicPrefix == "" {
		cfg.PublicPrefix = "/uploads"
	}
	if len(cfg.AllowedMIMEs) == 0 {
		for mime := range imageExtensions {
			cfg.AllowedMIMEs = append(cfg.AllowedMIMEs, mime)
		}
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedMIMEs))
	for _, mime := range cfg.AllowedMIMEs {
		allowed[strings.ToLower(strings.TrimSpace(mime))] = struct{}{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{store: store, metrics: metrics, cfg: cfg, allowed: allowed, logger: logger}
}

// Save validates size and content type then persists the stream.
// The MIME type is sniffed from content; the client supplied type and filename are ignored.
func (s *UploadService) Save(ctx context.Context, size int64, r io.Reader) (*models.UploadResult, error) {
	if size > s.cfg.MaxBytes {
		return nil, s.tooLarge()
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, appErrors.Internal(err, "failed to read upload")
	}
	head = head[:n]
	if n == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file is empty")
	}

	mime := http.DetectContentType(head)
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	ext, known := imageExtensions[mime]
	if _, ok := s.allowed[mime]; !ok || !known {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedMedia, "unsupported file type "+mime)
	}

	counter := &countingReader{r: io.LimitReader(io.MultiReader(bytes.NewReader(head), r), s.cfg.MaxBytes+1)}
	name := uuid.NewString() + ext
	if _, err := s.store.SaveStream(name, counter); err != nil {
		return nil, appErrors.Internal(err, "failed to store upload")
	}
	if counter.n > s.cfg.MaxBytes {
		if err := s.store.Delete(name); err != nil {
			s.logger.Warn("failed to remove oversized upload", zap.String("name", name), zap.Error(err))
		}
		return nil, s.tooLarge()
	}

	if s.metrics != nil {
		s.metrics.AddUploadBytes(counter.n)
	}
	s.logger.Info("upload stored", zap.String("name", name), zap.String("mime", mime), zap.Int64("size", counter.n))
	return &models.UploadResult{
		Path:     strings.TrimRight(s.cfg.PublicPrefix, "/") + "/" + name,
		Filename: name,
		Size:     counter.n,
		MimeType: mime,
	}, nil
}

func (s *UploadService) tooLarge() error {
	return appErrors.Clone(appErrors.ErrPayloadTooLarge, "file exceeds the upload size limit")
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
