package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/logger"

	"github.com/google/uuid"
)

// Upload failure sentinels.
var (
	ErrUploadTooLarge    = errors.New("upload exceeds size limit")
	ErrUploadBadType     = errors.New("upload type not allowed")
	ErrUploadTooMany     = errors.New("too many files in upload")
	ErrUploadEmptyBatch  = errors.New("upload contains no files")
	ErrUploadUnsafeName  = errors.New("upload filename not allowed")
)

// UploadService stores product images on local disk under a date-sharded
// directory and returns URL paths for the catalog.
type UploadService struct {
	cfg     *config.UploadConfig
	baseDir string
	baseURL string
	now     func() time.Time
}

// NewUploadService creates the upload service. baseDir is the on-disk root
// served at baseURL.
func NewUploadService(cfg *config.UploadConfig, baseDir, baseURL string) *UploadService {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &UploadService{
		cfg:     cfg,
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

func (s *UploadService) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.AllowedTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}

func (s *UploadService) validate(file *multipart.FileHeader) error {
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return ErrUploadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || !s.extensionAllowed(ext) {
		return ErrUploadBadType
	}
	if strings.ContainsAny(file.Filename, "/\\") || strings.Contains(file.Filename, "..") {
		return ErrUploadUnsafeName
	}
	return nil
}

// sniffType reads the first bytes of the file and detects the real content
// type. The declared multipart header is not trusted.
func (s *UploadService) sniffType(file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func (s *UploadService) store(file *multipart.FileHeader) (string, error) {
	if err := s.validate(file); err != nil {
		return "", err
	}
	contentType, err := s.sniffType(file)
	if err != nil {
		return "", err
	}
	if !s.typeAllowed(contentType) {
		return "", ErrUploadBadType
	}

	now := s.now()
	shard := filepath.Join("product", now.Format("2006"), now.Format("01"))
	dir := filepath.Join(s.baseDir, shard)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, filepath.ToSlash(shard), name), nil
}

// StoreImages persists a batch of product images and returns their URL
// paths. The batch is validated up front; on a mid-batch failure the files
// already written are removed so a product never references half a batch.
func (s *UploadService) StoreImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrUploadEmptyBatch
	}
	if s.cfg.MaxImages > 0 && len(files) > s.cfg.MaxImages {
		return nil, ErrUploadTooMany
	}
	for _, file := range files {
		if err := s.validate(file); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.store(file)
		if err != nil {
			s.removeStored(urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *UploadService) removeStored(urls []string) {
	for _, url := range urls {
		rel := strings.TrimPrefix(url, s.baseURL+"/")
		path := filepath.Join(s.baseDir, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil {
			logger.Warnw("upload_rollback_failed", "path", path, "error", err)
		}
	}
}
