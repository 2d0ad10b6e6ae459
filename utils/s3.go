package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Uploader stores user-submitted images in S3 and hands back the public
// CloudFront URL.
type Uploader struct {
	client        *s3.Client
	bucket        string
	cloudFrontURL string
}

func NewUploader(region, bucket, cloudFrontURL string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return &Uploader{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		cloudFrontURL: cloudFrontURL,
	}, nil
}

// UploadBase64Image accepts a "data:<mime>;base64,<data>" URI, uploads the
// decoded bytes under the given prefix, and returns the public URL.
func (u *Uploader) UploadBase64Image(base64Data, filenamePrefix string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	mediaType := strings.SplitN(meta, ":", 2)
	if len(mediaType) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0] // "image/jpeg"

	ext := extensionFor(contentType)

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("%s-%d%s", filenamePrefix, time.Now().UnixNano(), ext)
	return u.put(key, contentType, imageData)
}

// UploadImage archives raw image bytes (food photos) and returns the
// public URL.
func (u *Uploader) UploadImage(prefix, filename, contentType string, data []byte) (string, error) {
	ext := extensionFor(contentType)
	if ext == "" {
		if i := strings.LastIndex(filename, "."); i >= 0 {
			ext = filename[i:]
		}
	}
	key := fmt.Sprintf("%s/%d%s", prefix, time.Now().UnixNano(), ext)
	return u.put(key, contentType, data)
}

func (u *Uploader) put(key, contentType string, data []byte) (string, error) {
	_, err := u.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("%s/%s", u.cloudFrontURL, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
