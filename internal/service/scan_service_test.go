package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"medilog/internal/errors"
)

// MockAnnotator is a mock implementation of vision.Annotator.
type MockAnnotator struct {
	mock.Mock
}

func (m *MockAnnotator) DetectTexts(ctx context.Context, img *visionpb.Image, ictx *visionpb.ImageContext, maxResults int) ([]*visionpb.EntityAnnotation, error) {
	args := m.Called(ctx, img, ictx, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*visionpb.EntityAnnotation), args.Error(1)
}

func TestScanService_ExtractText_Found(t *testing.T) {
	mockAnnotator := new(MockAnnotator)
	mockAnnotator.On("DetectTexts", mock.Anything, mock.MatchedBy(func(img *visionpb.Image) bool {
		return string(img.Content) == "fake-image-bytes"
	}), mock.Anything, mock.Anything).Return([]*visionpb.EntityAnnotation{
		{Description: "Paracetamol 500mg\nTake 1 tablet every 6 hours"},
		{Description: "Paracetamol"},
		{Description: "500mg"},
	}, nil)

	svc := NewScanService(mockAnnotator, time.Second)
	result, err := svc.ExtractText(context.Background(), []byte("fake-image-bytes"))

	assert.NoError(t, err)
	assert.True(t, result.Found)
	// Primary annotation only, verbatim: no local string mutation.
	assert.Equal(t, "Paracetamol 500mg\nTake 1 tablet every 6 hours", result.Text)
	assert.Contains(t, result.Text, "Paracetamol 500mg")
	mockAnnotator.AssertExpectations(t)
}

func TestScanService_ExtractText_NoText(t *testing.T) {
	mockAnnotator := new(MockAnnotator)
	mockAnnotator.On("DetectTexts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*visionpb.EntityAnnotation{}, nil)

	svc := NewScanService(mockAnnotator, time.Second)
	result, err := svc.ExtractText(context.Background(), []byte("blank-image"))

	assert.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, ClarityHint, result.Text)
}

func TestScanService_ExtractText_RemoteFailure(t *testing.T) {
	mockAnnotator := new(MockAnnotator)
	mockAnnotator.On("DetectTexts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("rpc error: quota exceeded"))

	svc := NewScanService(mockAnnotator, time.Second)
	_, err := svc.ExtractText(context.Background(), []byte("any-image"))

	// "couldn't ask" is an error, never downgraded to found=false.
	assert.ErrorIs(t, err, errors.ErrRecognitionUnavailable)
	assert.Contains(t, err.Error(), "quota exceeded")
}
