package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ImageStore writes processed image bytes under a public-servable name.
type ImageStore interface {
	Write(ctx context.Context, filename string, data []byte) error
}
