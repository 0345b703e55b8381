package integrity

import (
	"context"
	"errors"
	"testing"

	"post-receptor/core/settings"
	"post-receptor/core/storage"
	"post-receptor/core/storage/mocks"
	"post-receptor/feature/content/contenttest"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type verifierFunc func() error

func (f verifierFunc) VerifySchema() error { return f() }

var healthySettings = settings.Static{
	AuthToken:      "0123456789abcdef0123456789abcdef",
	TargetLanguage: "en_US",
}

func findCheck(t *testing.T, report Report, name string) Check {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %s not in report", name)
	return Check{}
}

func TestService_RunHealthy(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "media").Return(true, nil)

	store := contenttest.NewStore(t)
	svc := NewService(mockClient, storage.Config{Bucket: "media"}, healthySettings, zap.NewNop(),
		Schema{Name: "content", Verifier: store},
	)

	report := svc.Run(context.Background())
	assert.True(t, report.Healthy)
	assert.True(t, findCheck(t, report, "schema:content").OK)
	assert.True(t, findCheck(t, report, "storage").OK)

	// A missing API key is reported but does not fail the run.
	apiKey := findCheck(t, report, "settings:openai_api_key")
	assert.False(t, apiKey.OK)
	assert.False(t, apiKey.Required)
}

func TestService_RunUnhealthy(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "media").Return(false, nil)

	svc := NewService(mockClient, storage.Config{Bucket: "media"}, settings.Static{TargetLanguage: "xx_XX"}, zap.NewNop(),
		Schema{Name: "content", Verifier: verifierFunc(func() error { return errors.New("table receptor_posts is missing [title]") })},
	)

	report := svc.Run(context.Background())
	assert.False(t, report.Healthy)

	schema := findCheck(t, report, "schema:content")
	assert.False(t, schema.OK)
	assert.Contains(t, schema.Detail, "receptor_posts")

	assert.Equal(t, "bucket media does not exist", findCheck(t, report, "storage").Detail)
	assert.False(t, findCheck(t, report, "settings:auth_token").OK)
	assert.Contains(t, findCheck(t, report, "settings:target_language").Detail, "xx_XX")
}

func TestService_CheckStorageError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "media").Return(false, errors.New("connection refused"))

	svc := NewService(mockClient, storage.Config{Bucket: "media"}, healthySettings, nil)
	c := svc.CheckStorage(context.Background())
	assert.False(t, c.OK)
	assert.Contains(t, c.Detail, "connection refused")
}

func TestService_FixStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "media").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "media", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	svc := NewService(mockClient, storage.Config{Bucket: "media", Region: "eu-west-1"}, healthySettings, nil)
	require.NoError(t, svc.FixStorage(context.Background()))
	mockClient.AssertExpectations(t)
}
