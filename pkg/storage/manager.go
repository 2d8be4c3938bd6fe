package storage

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

var (
	managerMu sync.RWMutex
	disks     = map[string]Disk{}
)

// Connect boots the storage manager. Call once at application startup.
// The local disk is always available; the s3 disk boots only when
// S3_BUCKET is configured.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	disks["local"] = newLocalDisk()

	if config.Get("S3_BUCKET", "") != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk, or nil when it is not configured.
func Use(name string) Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[name]
}

// RegisterDisk plugs in a custom Disk implementation. Used by tests.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// MustUse returns the named disk or an error when absent.
func MustUse(name string) (Disk, error) {
	if d := Use(name); d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("storage: disk %q is not configured", name)
}
