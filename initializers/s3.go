package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "ats-backend/s3"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client")
		return
	}
	s3client.Instance = client
	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure the offer bucket")
	}
	log.Info("S3 client initialized")
}
