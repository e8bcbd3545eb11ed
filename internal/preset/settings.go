package preset

import (
	"slices"

	"github.com/Kargones/nx-preset/internal/constants"
)

// Settings - упорядоченный набор дополнительных настроек.
// Порядок значим: опции выводятся в документ в порядке добавления.
type Settings []Option

// DefaultSettings возвращает новую копию настроек по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		{Key: constants.KeyAudioAlert, Value: constants.DefaultFlagValue},
		{Key: constants.KeyResizeMessage, Value: constants.DefaultFlagValue},
		{Key: constants.KeyViewModeMessage, Value: constants.DefaultFlagValue},
	}
}

// Set задаёт значение. Существующий ключ сохраняет позицию,
// новый добавляется в конец.
func (s *Settings) Set(key, value string) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Option{Key: key, Value: value})
}

// Keys возвращает ключи в порядке следования.
func (s Settings) Keys() []string {
	keys := make([]string, len(s))
	for i, o := range s {
		keys[i] = o.Key
	}
	return keys
}

// Merge возвращает копию s, поверх которой наложены overrides.
// При повторе ключа побеждает более позднее значение.
// Зарезервированные ключи из overrides пропускаются.
func (s Settings) Merge(overrides Settings) Settings {
	merged := slices.Clone(s)
	reserved := constants.ReservedKeys()
	for _, o := range overrides {
		if slices.Contains(reserved, o.Key) {
			continue
		}
		merged.Set(o.Key, o.Value)
	}
	return merged
}
