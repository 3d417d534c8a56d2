package permission

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Request policies for FileStore.
const (
	PolicyGrant = "grant"
	PolicyDeny  = "deny"
)

// grantsFile is the on-disk layout of the grants file.
type grantsFile struct {
	Devices map[string]string `yaml:"devices"` // device path -> status name
}

// FileStore keeps camera grants in a YAML file, keyed by device path.
// A device that does not exist reports Unavailable. A device with no entry
// reports Denied, so the first Request applies the configured policy; a
// refused request is stored as Blocked and is not askable again until the
// entry is reset.
type FileStore struct {
	path   string
	device string
	policy string

	mu sync.Mutex
}

// NewFileStore creates a store for device backed by the grants file at path.
func NewFileStore(path, device, policy string) *FileStore {
	return &FileStore{path: path, device: device, policy: policy}
}

// Device returns the device path this store answers for.
func (f *FileStore) Device() string {
	return f.device
}

// Check returns the stored status for the device without prompting.
func (f *FileStore) Check(ctx context.Context) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Denied, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.check()
}

// Request applies the request policy to an askable device and records the answer.
func (f *FileStore) Request(ctx context.Context) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Denied, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	status, err := f.check()
	if err != nil || status != Denied {
		return status, err
	}

	switch f.policy {
	case PolicyGrant:
		status = Granted
	case PolicyDeny:
		status = Blocked
	default:
		return Denied, fmt.Errorf("unknown request policy %q", f.policy)
	}

	if err := f.write(status); err != nil {
		return Denied, err
	}
	return status, nil
}

// Set records status for the device, as a settings app would.
func (f *FileStore) Set(status Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(status)
}

// Reset removes the device entry so the next query is askable again.
func (f *FileStore) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	grants, err := f.read()
	if err != nil {
		return err
	}
	delete(grants.Devices, f.device)
	return f.save(grants)
}

func (f *FileStore) check() (Status, error) {
	info, err := os.Stat(f.device)
	if err != nil {
		if os.IsNotExist(err) {
			return Unavailable, nil
		}
		return Denied, fmt.Errorf("stat camera device: %w", err)
	}
	if !info.IsDir() {
		return Unavailable, nil
	}

	grants, err := f.read()
	if err != nil {
		return Denied, err
	}

	name, ok := grants.Devices[f.device]
	if !ok {
		return Denied, nil
	}
	return ParseStatus(name)
}

func (f *FileStore) write(status Status) error {
	grants, err := f.read()
	if err != nil {
		return err
	}
	grants.Devices[f.device] = status.String()
	return f.save(grants)
}

func (f *FileStore) read() (*grantsFile, error) {
	grants := &grantsFile{}

	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading grants file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, grants); err != nil {
			return nil, fmt.Errorf("parsing grants file: %w", err)
		}
	}

	if grants.Devices == nil {
		grants.Devices = make(map[string]string)
	}
	return grants, nil
}

func (f *FileStore) save(grants *grantsFile) error {
	data, err := yaml.Marshal(grants)
	if err != nil {
		return fmt.Errorf("encoding grants file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating grants dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing grants file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing grants file: %w", err)
	}
	return nil
}
