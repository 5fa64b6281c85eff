package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/common"
	sc "github.com/akorchak/caseflow/internal/server/config"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/documents"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
)

// Seams for testing the AWS presign path without network access.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignValidity = 15 * time.Minute

// DocumentService covers case documents and their binary attachments in
// S3-compatible object storage.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *DocumentService {
	return &DocumentService{db: db, repomanager: m, config: cfg}
}

// NewStorageKey produces a date-sharded object key for an attachment.
func NewStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("documents/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *DocumentService) List(ctx context.Context, filter documents.ListFilter) ([]models.Document, error) {
	return s.repomanager.Documents(s.db).List(ctx, filter)
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.repomanager.Documents(s.db).Get(ctx, id)
}

func (s *DocumentService) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	if d.Title == "" || d.DocType == "" {
		return nil, fmt.Errorf("%w: title and type are required", common.ErrorValidation)
	}
	if _, err := s.repomanager.Cases(s.db).Get(ctx, d.CaseID); err != nil {
		return nil, err
	}
	return s.repomanager.Documents(s.db).Create(ctx, d)
}

func (s *DocumentService) Update(ctx context.Context, d *models.Document) (*models.Document, error) {
	if d.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repomanager.Documents(s.db).Update(ctx, d)
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Documents(s.db).SoftDelete(ctx, id)
}

func (s *DocumentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// UploadURL mints a fresh storage key for the document, records it, and
// returns a presigned PUT URL the client can upload the attachment to.
func (s *DocumentService) UploadURL(ctx context.Context, id uuid.UUID) (*models.AttachmentURL, error) {
	repo := s.repomanager.Documents(s.db)
	if _, err := repo.Get(ctx, id); err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := NewStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return nil, err
	}

	if err := repo.SetStorageKey(ctx, id, key); err != nil {
		return nil, err
	}

	return &models.AttachmentURL{DocumentID: id, URL: req.URL}, nil
}

// DownloadURL returns a presigned GET URL for the document's stored
// attachment. Documents without an attachment yield ErrorNotFound.
func (s *DocumentService) DownloadURL(ctx context.Context, id uuid.UUID) (*models.AttachmentURL, error) {
	doc, err := s.repomanager.Documents(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.StorageKey == nil || *doc.StorageKey == "" {
		return nil, common.ErrorNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    doc.StorageKey,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return nil, err
	}

	return &models.AttachmentURL{DocumentID: id, URL: req.URL}, nil
}
