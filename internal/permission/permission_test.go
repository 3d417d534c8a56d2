package permission

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore returns canned answers and counts requests.
type fakeStore struct {
	check      Status
	checkErr   error
	request    Status
	requestErr error
	requests   int
}

func (f *fakeStore) Check(ctx context.Context) (Status, error) {
	return f.check, f.checkErr
}

func (f *fakeStore) Request(ctx context.Context) (Status, error) {
	f.requests++
	return f.request, f.requestErr
}

func TestResolve_FailClosedTotality(t *testing.T) {
	tests := []struct {
		name         string
		store        *fakeStore
		want         bool
		wantRequests int
	}{
		{"granted", &fakeStore{check: Granted}, true, 0},
		{"blocked", &fakeStore{check: Blocked}, false, 0},
		{"restricted", &fakeStore{check: Restricted}, false, 0},
		{"unavailable", &fakeStore{check: Unavailable}, false, 0},
		{"check error", &fakeStore{check: Granted, checkErr: errors.New("boom")}, false, 0},
		{"askable then granted", &fakeStore{check: Denied, request: Granted}, true, 1},
		{"askable then blocked", &fakeStore{check: Denied, request: Blocked}, false, 1},
		{"askable then denied", &fakeStore{check: Denied, request: Denied}, false, 1},
		{"request error", &fakeStore{check: Denied, request: Granted, requestErr: errors.New("boom")}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(context.Background(), tt.store)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRequests, tt.store.requests)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{Granted, Denied, Blocked, Restricted, Unavailable} {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("maybe")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func newTestFileStore(t *testing.T, policy string) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	device := filepath.Join(dir, "frames")
	require.NoError(t, os.Mkdir(device, 0o755))
	grants := filepath.Join(dir, "state", "permissions.yaml")
	return NewFileStore(grants, device, policy), grants
}

func TestFileStore_MissingDeviceUnavailable(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "p.yaml"), filepath.Join(dir, "nope"), PolicyGrant)

	status, err := store.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Unavailable, status)
	assert.False(t, Resolve(context.Background(), store))
}

func TestFileStore_FirstQueryAskable(t *testing.T) {
	store, _ := newTestFileStore(t, PolicyGrant)

	status, err := store.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Denied, status)
}

func TestFileStore_RequestGrantPolicy(t *testing.T) {
	store, path := newTestFileStore(t, PolicyGrant)

	assert.True(t, Resolve(context.Background(), store))

	status, err := store.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Granted, status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "granted")
}

func TestFileStore_RequestDenyPolicyBlocks(t *testing.T) {
	store, _ := newTestFileStore(t, PolicyDeny)

	assert.False(t, Resolve(context.Background(), store))

	// A refused request is not askable again
	status, err := store.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Blocked, status)
	assert.False(t, Resolve(context.Background(), store))
}

func TestFileStore_SetAndReset(t *testing.T) {
	store, _ := newTestFileStore(t, PolicyDeny)
	ctx := context.Background()

	require.NoError(t, store.Set(Granted))
	assert.True(t, Resolve(ctx, store))

	require.NoError(t, store.Set(Restricted))
	assert.False(t, Resolve(ctx, store))

	require.NoError(t, store.Reset())
	status, err := store.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, Denied, status)
}

func TestFileStore_CorruptFileFailsClosed(t *testing.T) {
	store, path := newTestFileStore(t, PolicyGrant)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("devices: [::"), 0o600))

	_, err := store.Check(context.Background())
	assert.Error(t, err)
	assert.False(t, Resolve(context.Background(), store))
}

func TestFileStore_CancelledContext(t *testing.T) {
	store, _ := newTestFileStore(t, PolicyGrant)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Check(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, Resolve(ctx, store))
}

func TestStore_Interface(t *testing.T) {
	var _ Store = &FileStore{}
	var _ Store = &fakeStore{}
}
