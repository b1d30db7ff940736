package jobscout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	ctx := context.Background()

	t.Run("create new service", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		svc, err := NewService(ctx, tmpDir)
		require.NoError(t, err)
		require.NotNil(t, svc)
		defer svc.Close(ctx)

		assert.NotNil(t, svc.JobRepository())
		assert.NotNil(t, svc.GraphStore())
		assert.False(t, svc.GraphEnabled())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to open the store at a file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		svc, err := NewService(ctx, tmpFile)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestService_Close(t *testing.T) {
	ctx := context.Background()

	svc, err := NewService(ctx, t.TempDir())
	require.NoError(t, err)

	err = svc.Close(ctx)
	assert.NoError(t, err)
}

func TestService_FactoryMethods(t *testing.T) {
	ctx := context.Background()

	svc, err := NewService(ctx, t.TempDir())
	require.NoError(t, err)
	defer svc.Close(ctx)

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := svc.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create handler", func(t *testing.T) {
		handler, err := svc.NewHandler()
		require.NoError(t, err)
		require.NotNil(t, handler)
	})

	t.Run("can create reembedder", func(t *testing.T) {
		reembedder := svc.NewReembedder(nil, os.Stderr)
		require.NotNil(t, reembedder)
	})
}
