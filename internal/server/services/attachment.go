package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/studynotes/internal/common"
	sc "github.com/dmitrijs2005/studynotes/internal/server/config"
	"github.com/dmitrijs2005/studynotes/internal/server/models"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

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

// PresignExpires is how long generated upload/download URLs stay valid.
const PresignExpires = 15 * time.Minute

// UploadTask is what a client needs to upload one attachment: the stored
// metadata plus a presigned PUT URL for the object body.
type UploadTask struct {
	Attachment *models.Attachment
	UploadURL  string
}

// AttachmentService stores attachment metadata in the database and the bodies
// in an S3-compatible object store. Clients never talk to the store directly:
// they receive short-lived presigned URLs.
type AttachmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

// NewAttachmentService constructs an AttachmentService.
func NewAttachmentService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *AttachmentService {
	return &AttachmentService{db: db, repomanager: m, config: config}
}

// GetRandomStorageKey returns a fresh object key, partitioned by date so
// bucket listings stay manageable.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AttachmentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
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

func (s *AttachmentService) presignedPutURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}
	bucket := s.config.S3Bucket
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *AttachmentService) presignedGetURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}
	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// RequestUpload registers attachment metadata under the question and returns
// a presigned PUT URL the client uploads the body to. A blank file name yields
// ErrorValidation; a question outside the caller's subjects yields
// ErrorForbidden.
func (s *AttachmentService) RequestUpload(ctx context.Context, ownerID int64, questionID int64, fileName string) (*UploadTask, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name must not be blank", common.ErrorValidation)
	}

	key := GetRandomStorageKey()
	repo := s.repomanager.Attachments(s.db)
	attachment, err := repo.Create(ctx, questionID, ownerID, fileName, key)
	if err != nil {
		return nil, err
	}

	url, err := s.presignedPutURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload url: %v", err)
	}
	return &UploadTask{Attachment: attachment, UploadURL: url}, nil
}

// List returns all attachments of the question. A question outside the
// caller's subjects yields ErrorNotFound.
func (s *AttachmentService) List(ctx context.Context, ownerID int64, questionID int64) ([]*models.Attachment, error) {
	if _, err := s.repomanager.Questions(s.db).GetByIDForOwner(ctx, questionID, ownerID); err != nil {
		return nil, err
	}
	repo := s.repomanager.Attachments(s.db)
	list, err := repo.ListByQuestion(ctx, questionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing attachments: %v", err)
	}
	return list, nil
}

// GetURL returns a presigned GET URL for the attachment body.
func (s *AttachmentService) GetURL(ctx context.Context, ownerID int64, attachmentID int64) (string, error) {
	repo := s.repomanager.Attachments(s.db)
	attachment, err := repo.GetByIDForOwner(ctx, attachmentID, ownerID)
	if err != nil {
		return "", err
	}
	url, err := s.presignedGetURL(ctx, attachment.StorageKey)
	if err != nil {
		return "", fmt.Errorf("error presigning download url: %v", err)
	}
	return url, nil
}

// Delete removes the attachment metadata. The object itself is left to bucket
// lifecycle policies.
func (s *AttachmentService) Delete(ctx context.Context, ownerID int64, attachmentID int64) error {
	repo := s.repomanager.Attachments(s.db)
	deleted, err := repo.Delete(ctx, attachmentID, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting attachment: %v", err)
	}
	if !deleted {
		return common.ErrorNotFound
	}
	return nil
}
