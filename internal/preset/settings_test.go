package preset

import (
	"testing"

	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, []string{
		constants.KeyAudioAlert,
		constants.KeyResizeMessage,
		constants.KeyViewModeMessage,
	}, s.Keys())
	for _, o := range s {
		assert.Equal(t, "false", o.Value)
	}

	// Каждый вызов возвращает независимую копию
	s[0].Value = "true"
	assert.Equal(t, "false", DefaultSettings()[0].Value)
}

func TestSettings_Set(t *testing.T) {
	var s Settings
	s.Set("a", "1")
	s.Set("b", "2")
	s.Set("a", "3")

	assert.Equal(t, Settings{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, s)
}

// valueOf возвращает значение ключа из набора.
func valueOf(s Settings, key string) (string, bool) {
	for _, o := range s {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}

func TestSettings_Merge(t *testing.T) {
	tests := []struct {
		name      string
		overrides Settings
		wantKeys  []string
		check     map[string]string
	}{
		{
			name:      "nil overrides",
			overrides: nil,
			wantKeys:  DefaultSettings().Keys(),
		},
		{
			name:      "override keeps position",
			overrides: Settings{{Key: constants.KeyViewModeMessage, Value: "true"}},
			wantKeys:  DefaultSettings().Keys(),
			check:     map[string]string{constants.KeyViewModeMessage: "true"},
		},
		{
			name:      "new keys appended in order",
			overrides: Settings{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}},
			wantKeys:  append(DefaultSettings().Keys(), "z", "a"),
		},
		{
			name:      "later duplicate wins",
			overrides: Settings{{Key: "k", Value: "1"}, {Key: "k", Value: "2"}},
			wantKeys:  append(DefaultSettings().Keys(), "k"),
			check:     map[string]string{"k": "2"},
		},
		{
			name:      "reserved keys dropped",
			overrides: Settings{{Key: constants.KeyServerHost, Value: "x"}, {Key: constants.KeySessionScreenshot, Value: "y"}},
			wantKeys:  DefaultSettings().Keys(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultSettings()
			merged := base.Merge(tt.overrides)

			assert.Equal(t, tt.wantKeys, merged.Keys())
			for k, want := range tt.check {
				got, ok := valueOf(merged, k)
				assert.True(t, ok, k)
				assert.Equal(t, want, got, k)
			}
			assert.Equal(t, DefaultSettings(), base, "Merge не изменяет исходный набор")
		})
	}
}
