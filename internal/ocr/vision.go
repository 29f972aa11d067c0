package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// Vision recognizes text with the Google Cloud Vision API. Credentials come
// from GOOGLE_CREDENTIALS (inline JSON), GOOGLE_APPLICATION_CREDENTIALS
// (a file path) or application default credentials, in that order.
type Vision struct {
	client *vision.ImageAnnotatorClient
	logger *slog.Logger
}

func NewVision(ctx context.Context, logger *slog.Logger) (*Vision, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var client *vision.ImageAnnotatorClient
	var err error
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &Vision{client: client, logger: logger}, nil
}

func (v *Vision) Recognize(ctx context.Context, image []byte) ([]string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision annotate: %w", err)
	}
	if len(resp.Responses) == 0 {
		return nil, ErrNoText
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return nil, fmt.Errorf("vision annotate: %s", r.Error.GetMessage())
	}

	lines := SplitLines(r.GetFullTextAnnotation().GetText())
	v.logger.Debug("vision recognized", "lines", len(lines))
	return lines, nil
}

// Close releases the underlying API client.
func (v *Vision) Close() error {
	return v.client.Close()
}
