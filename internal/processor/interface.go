package processor

import "context"

// Processor defines the interface for handling one incoming media file.
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
}
