// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"encoding/json"
	"time"
)

type LocalFileInfo struct {
	name    string
	modTime time.Time
	dir     bool
	size    int64
}

func (lfi *LocalFileInfo) IsDir() bool {
	return lfi.dir
}

func (lfi *LocalFileInfo) Name() string {
	return lfi.name
}

func (lfi *LocalFileInfo) ModTime() time.Time {
	return lfi.modTime
}

func (lfi *LocalFileInfo) Size() int64 {
	return lfi.size
}

func (lfi *LocalFileInfo) String() string {
	return lfi.name
}

func (lfi *LocalFileInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"dir":     lfi.dir,
		"modTime": lfi.modTime,
		"name":    lfi.name,
		"size":    lfi.size,
	})
}

func NewLocalFileInfo(name string, modTime time.Time, dir bool, size int64) *LocalFileInfo {
	return &LocalFileInfo{
		name:    name,
		modTime: modTime,
		dir:     dir,
		size:    size,
	}
}
