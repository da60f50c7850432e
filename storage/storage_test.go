package storage

import (
	"context"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// backends returns every storage system to test. S3 is included when
// CHRONO_S3_ENDPOINT points at a LocalStack or MinIO instance with a
// "test" bucket.
type backend struct {
	name    string
	storage System
}

func backends(t *testing.T) []backend {
	tests := []backend{
		{
			name:    "memory",
			storage: NewMemoryStorage(),
		},
		{
			name:    "disk",
			storage: NewDiskStorage(t.TempDir()),
		},
	}

	if endpoint := os.Getenv("CHRONO_S3_ENDPOINT"); endpoint != "" {
		s3storage, err := NewS3StorageFromOptions(context.Background(), S3Options{
			Bucket:    "test",
			Region:    "us-east-1",
			Endpoint:  endpoint,
			AccessKey: "test",
			SecretKey: "test",
		})
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		tests = append(tests, backend{name: "s3", storage: s3storage})
	}
	return tests
}

func TestWriteRead(t *testing.T) {
	for _, tt := range backends(t) {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			key := "schedule/test.entry"
			data := []byte("hello world")

			err := tt.storage.Write(ctx, key, data)
			require.NoError(t, err)

			readData, err := tt.storage.Read(ctx, key)
			require.NoError(t, err)
			require.Equal(t, data, readData)

			// overwrite
			err = tt.storage.Write(ctx, key, []byte("bye"))
			require.NoError(t, err)
			readData, err = tt.storage.Read(ctx, key)
			require.NoError(t, err)
			require.Equal(t, []byte("bye"), readData)

			require.NoError(t, tt.storage.Delete(ctx, key))
		})
	}
}

func TestReadMissing(t *testing.T) {
	for _, tt := range backends(t) {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.storage.Read(context.Background(), "schedule/missing.entry")
			require.True(t, errors.Is(err, ErrDoesNotExist), "got %v", err)
		})
	}
}

func TestDelete(t *testing.T) {
	for _, tt := range backends(t) {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, tt.storage.Write(ctx, "a/1", []byte{1}))
			require.NoError(t, tt.storage.Delete(ctx, "a/1"))

			_, err := tt.storage.Read(ctx, "a/1")
			require.True(t, errors.Is(err, ErrDoesNotExist), "got %v", err)

			// deleting twice is fine
			require.NoError(t, tt.storage.Delete(ctx, "a/1"))
		})
	}
}

func TestGetKeysWithPrefix(t *testing.T) {
	for _, tt := range backends(t) {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			for _, k := range []string{"prefix/a", "prefix/b", "other/c"} {
				require.NoError(t, tt.storage.Write(ctx, k, []byte(k)))
			}

			keys, err := tt.storage.GetKeysWithPrefix(ctx, "prefix/")
			require.NoError(t, err)
			require.ElementsMatch(t, []string{"prefix/a", "prefix/b"}, keys)

			keys, err = tt.storage.GetKeysWithPrefix(ctx, "nothing/")
			require.NoError(t, err)
			require.Empty(t, keys)

			for _, k := range []string{"prefix/a", "prefix/b", "other/c"} {
				require.NoError(t, tt.storage.Delete(ctx, k))
			}
		})
	}
}

func TestMemoryStorageCopies(t *testing.T) {
	s := NewMemoryStorage()
	data := []byte{1, 2, 3}
	require.NoError(t, s.Write(context.Background(), "k", data))
	data[0] = 9

	got, err := s.Read(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	disk := NewDiskStorage(t.TempDir())
	require.ErrorIs(t, disk.Write(ctx, "k", []byte{1}), context.Canceled)
	_, err := NewMemoryStorage().Read(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiskStorageMissingDir(t *testing.T) {
	disk := NewDiskStorage(t.TempDir() + "/not-yet")
	keys, err := disk.GetKeysWithPrefix(context.Background(), "schedule/")
	require.NoError(t, err)
	require.Empty(t, keys)
}
