package app

import (
	"os"
	"path/filepath"

	"github.com/Kargones/nx-preset/internal/constants"
)

// writeFile записывает data через временный файл в том же каталоге и rename.
// При любой ошибке временный файл удаляется, а существующий path не меняется.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName) //nolint:errcheck // временный файл может уже отсутствовать
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close() //nolint:errcheck // основная ошибка уже есть
		return err
	}
	if err = tmp.Chmod(constants.FilePermPreset); err != nil {
		_ = tmp.Close() //nolint:errcheck // основная ошибка уже есть
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
