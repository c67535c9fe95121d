package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/server/config"
)

type s3Capture struct {
	region    string
	endpoint  string
	pathStyle bool
	putKey    string
	putBody   []byte
	getKey    string
	expires   time.Duration
}

// stubS3 swaps the S3 seams for the duration of the test.
func stubS3(t *testing.T, putErr, presignErr error) *s3Capture {
	t.Helper()
	c := &s3Capture{}

	origLoad, origNew, origPut, origPresign := loadDefaultAWSConfig, newS3ClientFromConfig, putObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject, presignGetObject = origLoad, origNew, origPut, origPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		c.region = lo.Region
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		c.endpoint = aws.ToString(o.BaseEndpoint)
		c.pathStyle = o.UsePathStyle
		return &s3.Client{}
	}
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput) error {
		if putErr != nil {
			return putErr
		}
		c.putKey = aws.ToString(in.Key)
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		c.putBody = b
		return nil
	}
	presignGetObject = func(_ *s3.Client, _ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if presignErr != nil {
			return nil, presignErr
		}
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		c.getKey = aws.ToString(in.Key)
		c.expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/signed"}, nil
	}
	return c
}

func newExportService(rm *fakeRepoManager) *ExportService {
	cfg := &config.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "moodkeeper",
	}
	s := NewExportService(nil, rm, cfg, logging.Nop{})
	s.now = func() time.Time { return day0 }
	return s
}

func TestExport_UploadsAndPresigns(t *testing.T) {
	rm := newFakeRepoManager()
	seed(rm, "u1", []string{"feliz", "triste"}, 70)
	seed(rm, "u2", []string{"neutral"}, 70)
	capture := stubS3(t, nil, nil)

	res, err := newExportService(rm).Export(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "https://s3.local/signed", res.URL)
	assert.Regexp(t, regexp.MustCompile(`^users/u1/exports/2025/05/10/[0-9a-f-]{36}\.json$`), res.Key)
	assert.Equal(t, res.Key, capture.putKey)
	assert.Equal(t, res.Key, capture.getKey)
	assert.Equal(t, ExportURLValidity, capture.expires)
	assert.Equal(t, "us-east-1", capture.region)
	assert.Equal(t, "http://127.0.0.1:9000", capture.endpoint)
	assert.True(t, capture.pathStyle)

	var doc exportDocument
	require.NoError(t, json.Unmarshal(capture.putBody, &doc))
	assert.Equal(t, "u1", doc.OwnerID)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "feliz", doc.Records[0].Mood)
}

func TestExport_Failures(t *testing.T) {
	ctx := context.Background()

	_, err := newExportService(newFakeRepoManager()).Export(ctx, "")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	rm := newFakeRepoManager()
	rm.records.readErr = errBoom{}
	stubS3(t, nil, nil)
	_, err = newExportService(rm).Export(ctx, "u1")
	assert.ErrorContains(t, err, "error reading records")

	stubS3(t, errors.New("bucket missing"), nil)
	_, err = newExportService(newFakeRepoManager()).Export(ctx, "u1")
	assert.ErrorContains(t, err, "uploading export: bucket missing")

	stubS3(t, nil, errors.New("no creds"))
	_, err = newExportService(newFakeRepoManager()).Export(ctx, "u1")
	assert.ErrorContains(t, err, "presigning export: no creds")
}

func TestExport_ConfigLoadError(t *testing.T) {
	stubS3(t, nil, nil)
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := newExportService(newFakeRepoManager()).Export(context.Background(), "u1")
	assert.ErrorContains(t, err, "s3 client: load-fail")
}
