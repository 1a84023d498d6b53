package internal

import (
	"testing"

	"github.com/kcmvp/archunit"
)

func TestArchitecture(t *testing.T) {
	domain := archunit.Packages("domain", []string{".../internal/lights"})
	adapters := archunit.Packages("adapters", []string{
		".../internal/relay",
		".../internal/screen",
		".../internal/audio",
		".../internal/backlight",
		".../internal/spike",
	})

	// the core state machine must stay free of adapter imports; adapters
	// depend on it through the Sender and palette contracts only
	if err := domain.ShouldNotReferLayers(adapters); err != nil {
		t.Errorf("Architecture violation: domain depends on adapters: %v", err)
	}
}
