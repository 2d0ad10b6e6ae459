package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService is the local fallback food analyzer used when the
// vision API is unreachable or quota-limited.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(region string) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectFoodLabels returns the top labels for raw image bytes.
func (r *RekognitionService) DetectFoodLabels(data []byte) ([]string, error) {
	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels detected")
	}
	return labels, nil
}
