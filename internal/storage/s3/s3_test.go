package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"contacts/internal/config"
	"contacts/internal/storage/s3"
)

type fakeClient struct {
	input *awss3.PutObjectInput
	body  string
	err   error
}

func (f *fakeClient) PutObject(_ context.Context, params *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.input = params

	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(data)

	return &awss3.PutObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Storage
		want string
	}{
		{
			name: "Public URL",
			cfg:  config.Storage{Bucket: "avatars", PublicURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com/avatars/1/a.png",
		},
		{
			name: "Custom endpoint",
			cfg:  config.Storage{Bucket: "avatars", Endpoint: "http://127.0.0.1:9000/"},
			want: "http://127.0.0.1:9000/avatars/avatars/1/a.png",
		},
		{
			name: "AWS",
			cfg:  config.Storage{Bucket: "avatars", Region: "eu-west-1"},
			want: "https://avatars.s3.eu-west-1.amazonaws.com/avatars/1/a.png",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{}
			storage := s3.NewWithClient(client, tc.cfg)

			url, err := storage.Upload(context.Background(), "avatars/1/a.png", "image/png", strings.NewReader("png"), 3)
			require.NoError(t, err)
			require.Equal(t, tc.want, url)

			require.Equal(t, "avatars", aws.ToString(client.input.Bucket))
			require.Equal(t, "avatars/1/a.png", aws.ToString(client.input.Key))
			require.Equal(t, "image/png", aws.ToString(client.input.ContentType))
			require.Equal(t, int64(3), aws.ToInt64(client.input.ContentLength))
			require.Equal(t, "png", client.body)
		})
	}
}

func TestUploadError(t *testing.T) {
	storage := s3.NewWithClient(&fakeClient{err: errors.New("access denied")}, config.Storage{Bucket: "avatars"})

	_, err := storage.Upload(context.Background(), "k", "image/png", strings.NewReader(""), 0)
	require.ErrorContains(t, err, "access denied")
}
