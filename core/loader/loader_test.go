package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAll(t *testing.T) {
	t.Run("Loads enabled features only", func(t *testing.T) {
		enabled := &stubFeature{name: "menu", enabled: true}
		disabled := &stubFeature{name: "media", enabled: false}

		mgr := NewManager()
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("Propagates load errors", func(t *testing.T) {
		failing := &stubFeature{name: "modifier", enabled: true, loadErr: errors.New("boom")}

		mgr := NewManager()
		mgr.Register(failing)

		err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "modifier")
	})
}
