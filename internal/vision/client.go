package vision

import (
	"context"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// Annotator is the subset of the recognition service used by the scan
// service: one text-detection round trip returning annotations ordered by
// the service's own priority (the first entry is the primary detection).
type Annotator interface {
	DetectTexts(ctx context.Context, img *visionpb.Image, ictx *visionpb.ImageContext, maxResults int) ([]*visionpb.EntityAnnotation, error)
}

// NewAnnotator returns a Cloud Vision image annotator using application
// default credentials, plus its close function.
func NewAnnotator(ctx context.Context) (Annotator, func() error, error) {
	client, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
