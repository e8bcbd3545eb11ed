package app

import (
	"path/filepath"
	"strings"

	"github.com/Kargones/nx-preset/internal/constants"
)

// OutputPath возвращает путь файла пресета.
// Без requested это "<server>.nxs" в текущем каталоге. У заданного пути
// расширение заменяется на .nxs: "a/b.xml" → "a/b.nxs", "x.tar.gz" → "x.tar.nxs".
// Имя вида ".hidden" считается именем без расширения.
func OutputPath(server, requested string) string {
	if requested == "" {
		return server + constants.PresetExt
	}

	ext := filepath.Ext(requested)
	if ext == "" || ext == filepath.Base(requested) {
		return requested + constants.PresetExt
	}
	return strings.TrimSuffix(requested, ext) + constants.PresetExt
}
