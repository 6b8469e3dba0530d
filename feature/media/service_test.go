package media

import (
	"bytes"
	"context"
	"io"
	"testing"

	"menu-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUpload(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "media-bucket", "media/burger.png", mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{Size: 4}, nil)

	svc := NewService(client, "media-bucket", zap.NewNop())

	object, err := svc.Upload(context.Background(), "burger.png", "image/png", []byte("data"))
	assert.NoError(t, err)
	assert.Equal(t, "burger.png", object.Name)
	assert.Equal(t, int64(4), object.Size)
	client.AssertExpectations(t)
}

func TestUploadInvalidName(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "media-bucket", zap.NewNop())

	for _, name := range []string{"", "../escape.png", "/absolute.png"} {
		_, err := svc.Upload(context.Background(), name, "image/png", []byte("data"))
		assert.ErrorIs(t, err, ErrInvalidName)
	}
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGet(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "media-bucket", "media/burger.png", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("data"))), nil)

	svc := NewService(client, "media-bucket", zap.NewNop())

	object, err := svc.Get(context.Background(), "burger.png")
	assert.NoError(t, err)
	defer object.Close()

	body, err := io.ReadAll(object)
	assert.NoError(t, err)
	assert.Equal(t, []byte("data"), body)
}

func TestList(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "media-bucket", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 2)
			ch <- minio.ObjectInfo{Key: "media/burger.png", Size: 10}
			ch <- minio.ObjectInfo{Key: "media/fries.png", Size: 20}
			close(ch)
			return ch
		})

	svc := NewService(client, "media-bucket", zap.NewNop())

	objects, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, objects, 2)
	assert.Equal(t, "burger.png", objects[0].Name)
	assert.Equal(t, int64(20), objects[1].Size)
}

func TestDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "media-bucket", "media/burger.png", mock.Anything).
		Return(nil)

	svc := NewService(client, "media-bucket", zap.NewNop())

	err := svc.Delete(context.Background(), "burger.png")
	assert.NoError(t, err)
	client.AssertExpectations(t)
}
