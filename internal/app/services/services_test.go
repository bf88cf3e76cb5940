package services

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/mockapi"
)

// testEnv runs the full stack: services -> transport -> in-process mock
// platform, with a throwaway credential store.
type testEnv struct {
	mock  *mockapi.Server
	store *credstore.Store
	svc   *Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mock, err := mockapi.New(mockapi.Options{
		JWTSecret: "services-test-secret",
		UploadDir: t.TempDir(),
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	require.NoError(t, mockapi.Seed(mock.Store(), zerolog.Nop()))

	server := httptest.NewServer(mock.Engine())
	t.Cleanup(server.Close)

	store, err := credstore.New(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, err)

	api := client.New(client.Options{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
		Tokens:  store,
		Logger:  zerolog.Nop(),
	})

	return &testEnv{
		mock:  mock,
		store: store,
		svc:   NewServices(api, store, zerolog.Nop()),
	}
}

// loginAs signs in one of the seeded accounts.
func (e *testEnv) loginAs(t *testing.T, email, password string) {
	t.Helper()
	_, err := e.svc.Auth.Login(context.Background(), email, password)
	require.NoError(t, err)
}

func (e *testEnv) loginAlumni(t *testing.T) {
	e.loginAs(t, mockapi.SeedAlumniEmail, mockapi.SeedAlumniPassword)
}

func (e *testEnv) loginAdmin(t *testing.T) {
	e.loginAs(t, mockapi.SeedAdminEmail, mockapi.SeedAdminPassword)
}

// writeTempFile drops a small file with the given name into a temp dir and
// returns its path.
func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
