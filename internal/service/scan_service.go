package service

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"medilog/internal/errors"
	"medilog/internal/model"
	"medilog/internal/vision"
)

// ClarityHint is returned as the result text when the recognition service
// found no text in the image.
const ClarityHint = "ensure the photo is clear"

// ScanService converts an image into recognized text via one remote
// recognition round trip. No retry, no caching: a transport failure is
// surfaced as ErrRecognitionUnavailable, never folded into "no text found".
type ScanService interface {
	ExtractText(ctx context.Context, image []byte) (model.ExtractionResult, error)
}

type scanService struct {
	annotator vision.Annotator
	timeout   time.Duration
}

// NewScanService builds a ScanService over a recognition client.
func NewScanService(annotator vision.Annotator, timeout time.Duration) ScanService {
	return &scanService{annotator: annotator, timeout: timeout}
}

// ExtractText requests general text detection and keeps only the primary
// annotation, verbatim. Sub-regions beyond the first are discarded.
func (s *scanService) ExtractText(ctx context.Context, image []byte) (model.ExtractionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	annotations, err := s.annotator.DetectTexts(ctx, &visionpb.Image{Content: image}, nil, 0)
	if err != nil {
		return model.ExtractionResult{}, fmt.Errorf("%w: %v", errors.ErrRecognitionUnavailable, err)
	}
	if len(annotations) == 0 {
		return model.ExtractionResult{Found: false, Text: ClarityHint}, nil
	}
	return model.ExtractionResult{Found: true, Text: annotations[0].GetDescription()}, nil
}
