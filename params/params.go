package params

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pfeifer.dev/acc/utils"
)

var (
	ParamsPath string = DefaultParamsPath()
)

const ACC_SETTINGS_KEY = "AccSettings"

func ACC_SETTINGS() string {
	return ParamPath(ACC_SETTINGS_KEY)
}

func DefaultParamsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("could not find user config directory", "error", err)
		return filepath.Join(".", ".acc", "params")
	}
	return filepath.Join(dir, "acc", "params")
}

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read param")
	}
	return data, nil
}

func PutParam(path string, data []byte) error {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	unlock, err := utils.LockFile(filepath.Join(dir, ".lock"))
	if err != nil {
		return errors.Wrap(err, "could not lock params directory")
	}
	defer unlock()

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(path string) error {
	dir := filepath.Dir(path)
	unlock, err := utils.LockFile(filepath.Join(dir, ".lock"))
	if err != nil {
		return errors.Wrap(err, "could not lock params directory")
	}
	defer unlock()

	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "could not remove param file")
	}

	return syncDir(dir)
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}

	return nil
}
