package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/logger"
	"github.com/dmaia/sweetshop/internal/core/port"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

const (
	imageWidth  = 2000
	imageHeight = 1333
	jpegQuality = 90
)

// ImageUpload carries the raw multipart buffers for one update request.
type ImageUpload struct {
	Cover   []byte
	Gallery [][]byte
}

// ProductImages is the set of stored filenames produced by one ingestion.
type ProductImages struct {
	Cover   string
	Gallery []string
}

type ImageService struct {
	store port.ImageStore
}

func NewImageService(store port.ImageStore) *ImageService {
	return &ImageService{store: store}
}

// ProcessProductImages validates, resizes and stores the uploaded images.
// Processing only happens when both the cover and the gallery were sent;
// otherwise the upload is ignored (after media-type validation) and nil is
// returned. The writes run concurrently and the result is all-or-nothing:
// if any resize or write fails, no filenames are handed back.
func (s *ImageService) ProcessProductImages(ctx context.Context, productID string, upload ImageUpload) (*ProductImages, error) {
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	if len(upload.Cover) == 0 || len(upload.Gallery) == 0 {
		return nil, nil
	}
	if len(upload.Gallery) > domain.ProductMaxImages {
		return nil, serviceerrors.NewInvalidRequestError(
			fmt.Sprintf("at most %d secondary images may be uploaded", domain.ProductMaxImages))
	}

	stamp := time.Now().UnixMilli()
	result := &ProductImages{
		Cover:   fmt.Sprintf("product-%s-%d-cover.jpeg", productID, stamp),
		Gallery: make([]string, len(upload.Gallery)),
	}
	for i := range upload.Gallery {
		result.Gallery[i] = fmt.Sprintf("product-%s-%d-%d.jpeg", productID, stamp, i+1)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return s.resizeAndStore(groupCtx, upload.Cover, result.Cover)
	})
	for i := range upload.Gallery {
		data, filename := upload.Gallery[i], result.Gallery[i]
		group.Go(func() error {
			return s.resizeAndStore(groupCtx, data, filename)
		})
	}

	if err := group.Wait(); err != nil {
		logger.Error(ctx, "images: processing failed", err, map[string]any{"product_id": productID})
		return nil, err
	}

	return result, nil
}

func (s *ImageService) resizeAndStore(ctx context.Context, data []byte, filename string) error {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return serviceerrors.NewUnsupportedMediaError("could not decode uploaded image")
	}

	resized := imaging.Resize(img, imageWidth, imageHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}

	return s.store.Write(ctx, filename, buf.Bytes())
}

// validateUpload rejects any non-image payload, including ones that will
// later be skipped because their counterpart field is missing.
func validateUpload(upload ImageUpload) error {
	buffers := make([][]byte, 0, len(upload.Gallery)+1)
	if len(upload.Cover) > 0 {
		buffers = append(buffers, upload.Cover)
	}
	buffers = append(buffers, upload.Gallery...)

	for _, data := range buffers {
		if !strings.HasPrefix(http.DetectContentType(data), "image/") {
			return serviceerrors.NewUnsupportedMediaError("not an image, please upload only images")
		}
	}
	return nil
}
