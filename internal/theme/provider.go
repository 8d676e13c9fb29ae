package theme

import (
	"fmt"
	"sync"
)

// ChangedMsg announces a new current theme to the UI.
type ChangedMsg struct {
	Theme Theme
}

// Provider is the process-wide theme scope.
type Provider struct {
	mu       sync.RWMutex
	mode     Mode
	palettes Palettes
}

// NewProvider validates palettes and starts in mode.
func NewProvider(mode Mode, palettes Palettes) (*Provider, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if err := palettes.Validate(); err != nil {
		return nil, err
	}
	return &Provider{mode: mode, palettes: palettes}, nil
}

// Current returns the active mode with its tokens.
func (p *Provider) Current() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Theme{Mode: p.mode, Tokens: p.palettes.For(p.mode)}
}

// SetMode switches to m.
func (p *Provider) SetMode(m Mode) (Theme, error) {
	if _, err := ParseMode(string(m)); err != nil {
		return p.Current(), fmt.Errorf("set theme: %w", err)
	}
	p.mu.Lock()
	p.mode = m
	p.mu.Unlock()
	return p.Current(), nil
}

// Toggle flips between dark and light.
func (p *Provider) Toggle() Theme {
	p.mu.Lock()
	p.mode = p.mode.Other()
	p.mu.Unlock()
	return p.Current()
}
