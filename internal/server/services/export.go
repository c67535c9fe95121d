package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/server/config"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/repomanager"
)

// ExportURLValidity is how long a presigned download link stays usable.
const ExportURLValidity = 15 * time.Minute

// S3 seams, replaced in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}

	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return s3.NewPresignClient(c).PresignGetObject(ctx, in, optFns...)
	}
)

// ExportResult locates an uploaded export.
type ExportResult struct {
	Key   string
	URL   string
	Count int
}

// exportDocument is the JSON file written to object storage.
type exportDocument struct {
	OwnerID    string       `json:"owner_id"`
	ExportedAt time.Time    `json:"exported_at"`
	Records    []api.Record `json:"records"`
}

type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	logger      logging.Logger
	now         func() time.Time
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: m,
		config:      cfg,
		logger:      logger.With("module", "export_service"),
		now:         time.Now,
	}
}

// ExportKey builds users/<owner>/exports/<yyyy>/<mm>/<dd>/<uuid>.json.
func ExportKey(ownerID string, d time.Time) string {
	return fmt.Sprintf("users/%s/exports/%04d/%02d/%02d/%s.json", ownerID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) s3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export uploads all of the owner's records as one JSON document and
// returns a presigned link to download it.
func (s *ExportService) Export(ctx context.Context, ownerID string) (*ExportResult, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	recs, err := s.repomanager.Records(s.db).SelectAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}

	now := s.now()
	body, err := json.MarshalIndent(exportDocument{
		OwnerID:    ownerID,
		ExportedAt: now,
		Records:    api.RecordsFromModels(recs),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}

	client, err := s.s3Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ExportKey(ownerID, now)

	if err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("uploading export: %w", err)
	}

	req, err := presignGetObject(client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ExportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("presigning export: %w", err)
	}

	s.logger.Info(ctx, "records exported", "owner", ownerID, "key", key, "count", len(recs))
	return &ExportResult{Key: key, URL: req.URL, Count: len(recs)}, nil
}
