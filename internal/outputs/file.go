package outputs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/markusressel/fuzzyfan/internal/util"
)

// sysfs attributes can't be replaced by a rename, they are written in place
var sysfsRoot = "/sys/"

// FileOutput writes the fan speed, scaled to [0..MaxValue], to a file.
// Regular files are replaced atomically, files below /sys (f.ex. hwmon pwm files)
// are written in place.
type FileOutput struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	MaxValue int    `json:"maxValue"`
}

func (o *FileOutput) GetId() string {
	return o.ID
}

func (o *FileOutput) Write(speed float64) error {
	path, err := util.ExpandPath(o.Path)
	if err != nil {
		return fmt.Errorf("output %s: %w", o.ID, err)
	}
	value := util.ScaleToRange(speed, o.MaxValue)
	write := util.WriteIntToFileAtomic
	if isSysfsPath(path) {
		write = util.WriteIntToFile
	}
	if err := write(value, path); err != nil {
		return fmt.Errorf("output %s: unable to write to %s: %w", o.ID, path, err)
	}
	return nil
}

func isSysfsPath(path string) bool {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return strings.HasPrefix(path, sysfsRoot)
}
