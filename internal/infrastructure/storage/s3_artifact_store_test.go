package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.HeadBucketOutput)
	return out, args.Error(1)
}

func (m *mockS3) CreateBucket(ctx context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.CreateBucketOutput)
	return out, args.Error(1)
}

func newStore(t *testing.T, m *mockS3) *S3ArtifactStore {
	t.Helper()
	s, err := NewS3ArtifactStore(m, "nfe-artifacts", WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return s
}

func TestNewS3ArtifactStore_RequiresBucket(t *testing.T) {
	_, err := NewS3ArtifactStore(&mockS3{}, " ")
	assert.ErrorIs(t, err, ErrBucketRequired)
}

func TestPut(t *testing.T) {
	t.Run("writes object with content type", func(t *testing.T) {
		m := &mockS3{}
		m.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "nfe-artifacts" &&
				aws.ToString(in.Key) == "nfe/c-1/key.xml" &&
				aws.ToString(in.ContentType) == "application/xml" &&
				aws.ToInt64(in.ContentLength) == 4
		})).Return(&s3.PutObjectOutput{}, nil)

		require.NoError(t, newStore(t, m).Put(context.Background(), "nfe/c-1/key.xml", "application/xml", []byte("<a/>")))
		m.AssertExpectations(t)
	})

	t.Run("wraps client error", func(t *testing.T) {
		m := &mockS3{}
		boom := errors.New("boom")
		m.On("PutObject", mock.Anything, mock.Anything).Return(nil, boom)

		err := newStore(t, m).Put(context.Background(), "k", "application/pdf", nil)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		assert.Error(t, newStore(t, &mockS3{}).Put(context.Background(), "", "x", nil))
	})
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		m := &mockS3{}
		m.On("GetObject", mock.Anything, mock.Anything).Return(&s3.GetObjectOutput{
			Body:        io.NopCloser(strings.NewReader("%PDF-1.4")),
			ContentType: aws.String("application/pdf"),
		}, nil)

		body, ct, found, err := newStore(t, m).Get(context.Background(), "nfe/c-1/key.pdf")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "application/pdf", ct)
		assert.Equal(t, "%PDF-1.4", string(body))
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		m := &mockS3{}
		m.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{})

		_, _, found, err := newStore(t, m).Get(context.Background(), "nfe/c-1/missing.pdf")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		m := &mockS3{}
		m.On("GetObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

		_, _, found, err := newStore(t, m).Get(context.Background(), "k")
		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("existing bucket", func(t *testing.T) {
		m := &mockS3{}
		m.On("HeadBucket", mock.Anything, mock.Anything).Return(&s3.HeadBucketOutput{}, nil)

		require.NoError(t, newStore(t, m).EnsureBucket(context.Background()))
		m.AssertNotCalled(t, "CreateBucket", mock.Anything, mock.Anything)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		m := &mockS3{}
		m.On("HeadBucket", mock.Anything, mock.Anything).Return(nil, &types.NotFound{})
		m.On("CreateBucket", mock.Anything, mock.Anything).Return(&s3.CreateBucketOutput{}, nil)

		require.NoError(t, newStore(t, m).EnsureBucket(context.Background()))
		m.AssertExpectations(t)
	})

	t.Run("already owned is fine", func(t *testing.T) {
		m := &mockS3{}
		m.On("HeadBucket", mock.Anything, mock.Anything).Return(nil, &types.NoSuchBucket{})
		m.On("CreateBucket", mock.Anything, mock.Anything).Return(nil, &types.BucketAlreadyOwnedByYou{})

		require.NoError(t, newStore(t, m).EnsureBucket(context.Background()))
	})

	t.Run("unexpected head error", func(t *testing.T) {
		m := &mockS3{}
		m.On("HeadBucket", mock.Anything, mock.Anything).Return(nil, errors.New("forbidden"))

		assert.Error(t, newStore(t, m).EnsureBucket(context.Background()))
	})
}
