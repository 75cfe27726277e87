// Package storage uploads company logos and archived invoice PDFs to S3.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotImage is returned when an upload cannot be decoded as an image.
	ErrNotImage = errors.New("file is not a supported image")
	// ErrTooLarge is returned when an upload exceeds the size limit.
	ErrTooLarge = errors.New("file exceeds the size limit")
)

// Object locates an uploaded file.
type Object struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Uploader puts a blob under key and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3 uploads through the s3manager multipart uploader.
type S3 struct {
	uploader   *s3manager.Uploader
	bucket     string
	publicBase string
}

var _ Uploader = (*S3)(nil)

// NewS3 creates an uploader for bucket. publicBase overrides the default
// virtual-hosted bucket URL.
func NewS3(region, bucket, publicBase string) (*S3, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3{
		uploader:   s3manager.NewUploader(sess),
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *S3) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s to s3: %w", key, err)
	}
	return s.publicBase + "/" + key, nil
}

// Service stores logos and PDFs under their key prefixes.
type Service struct {
	up           Uploader
	log          *zap.Logger
	logoPrefix   string
	pdfPrefix    string
	maxLogoBytes int64
}

// NewService wraps up. A nil logger is replaced by a no-op one.
func NewService(up Uploader, log *zap.Logger, logoPrefix, pdfPrefix string, maxLogoBytes int64) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		up:           up,
		log:          log,
		logoPrefix:   logoPrefix,
		pdfPrefix:    pdfPrefix,
		maxLogoBytes: maxLogoBytes,
	}
}

// MaxLogoBytes is the largest accepted logo upload.
func (s *Service) MaxLogoBytes() int64 { return s.maxLogoBytes }

// StoreLogo normalizes the uploaded image to PNG and uploads it.
func (s *Service) StoreLogo(ctx context.Context, r io.Reader) (Object, error) {
	png, err := NormalizeLogo(r, s.maxLogoBytes)
	if err != nil {
		return Object{}, err
	}
	key := path.Join(s.logoPrefix, uuid.NewString()+".png")
	url, err := s.up.Upload(ctx, key, "image/png", bytes.NewReader(png))
	if err != nil {
		return Object{}, err
	}
	s.log.Info("logo uploaded", zap.String("path", key), zap.Int("bytes", len(png)))
	return Object{URL: url, Path: key}, nil
}

// ArchivePDF uploads a rendered document as <prefix>/<name>.pdf.
func (s *Service) ArchivePDF(ctx context.Context, name string, pdf []byte) (Object, error) {
	key := path.Join(s.pdfPrefix, name+".pdf")
	url, err := s.up.Upload(ctx, key, "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		return Object{}, err
	}
	s.log.Debug("pdf archived", zap.String("path", key))
	return Object{URL: url, Path: key}, nil
}
