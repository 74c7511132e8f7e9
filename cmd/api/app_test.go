package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"livestock-tracker/internal/config"
	"livestock-tracker/internal/platform/logger"
	"livestock-tracker/internal/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestServe_StopsOnCancel(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumerStopped := make(chan struct{})
	consume := func(ctx context.Context) error {
		<-ctx.Done()
		close(consumerStopped)
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, lis, &http.Server{Handler: router.NewRouter()}, consume) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting server to stop")
	}
	select {
	case <-consumerStopped:
	default:
		t.Fatal("consumer was not stopped")
	}
}

func TestServe_ConsumerErrorStopsServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	boom := errors.New("broker gone")
	done := make(chan error, 1)
	go func() {
		done <- serve(context.Background(), lis, &http.Server{Handler: http.NotFoundHandler()}, func(context.Context) error {
			return boom
		})
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, boom)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting serve to return")
	}
}

func loadTestConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_DSN", "REDIS_ADDR", "KAFKA_BROKERS", "CONFIG_PATH"} {
		t.Setenv(k, "")
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestBootstrap_InMemory(t *testing.T) {
	cfg := loadTestConfig(t, nil)

	app, err := bootstrap(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer app.close(logger.Nop())
	require.Nil(t, app.consume)

	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livestock", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Bella")
}

func TestBootstrap_SQLiteAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := loadTestConfig(t, map[string]string{
		"DB_DRIVER":  "sqlite",
		"DB_DSN":     filepath.Join(t.TempDir(), "herd.db"),
		"REDIS_ADDR": mr.Addr(),
	})

	app, err := bootstrap(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, mr.Exists("livestock-tracker:dashboard:summary"))
	app.close(logger.Nop())

	// Segundo arranque sobre el mismo archivo: no vuelve a sembrar.
	app, err = bootstrap(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer app.close(logger.Nop())

	rec = httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livestock?q=bella", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, strings.Count(rec.Body.String(), `"name":"Bella"`))
}

func TestBootstrap_KafkaWiresConsumer(t *testing.T) {
	cfg := loadTestConfig(t, map[string]string{"KAFKA_BROKERS": "127.0.0.1:1"})

	app, err := bootstrap(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, app.consume)
	app.close(logger.Nop())
}

func TestBootstrap_BadDatabase(t *testing.T) {
	cfg := loadTestConfig(t, map[string]string{
		"DB_DRIVER": "sqlite",
		"DB_DSN":    filepath.Join(t.TempDir(), "missing", "dir", "herd.db"),
	})

	_, err := bootstrap(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
}
