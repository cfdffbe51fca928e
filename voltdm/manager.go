// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package voltdm

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrUnknownDomain is returned when a map names a domain the manager
	// does not have.
	ErrUnknownDomain = errors.New("voltdm: unknown voltage domain")
	// ErrNoConverter is returned for a rail without a selector converter.
	ErrNoConverter = errors.New("voltdm: rail has no converter")
)

// Registrar accepts the PMIC description of the board's voltage domains.
type Registrar interface {
	Register(m Map) error
}

// Opts holds the Manager configuration.
type Opts struct {
	Logger *zap.Logger
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{}

// Manager is an in-memory Registrar over a fixed set of voltage domains.
//
// Registered Params are kept by reference and must not be modified
// afterwards.
type Manager struct {
	mu      sync.Mutex
	log     *zap.Logger
	domains map[string]*Params
	order   []string
}

// NewManager returns a Manager for the named domains.
func NewManager(opts *Opts, domains ...string) *Manager {
	if opts == nil {
		opts = &DefaultOpts
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{log: log, domains: make(map[string]*Params, len(domains))}
	for _, d := range domains {
		if _, ok := m.domains[d]; ok {
			continue
		}
		m.domains[d] = nil
		m.order = append(m.order, d)
	}
	return m
}

// Register attaches every rail of m to its domain.
//
// The map is validated first; on error nothing is attached.
func (m *Manager) Register(rails Map) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := rails.Entries()
	for _, e := range entries {
		if _, ok := m.domains[e.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDomain, e.Name)
		}
		if e.Params == nil || e.Params.Converter == nil {
			return fmt.Errorf("%w: %q", ErrNoConverter, e.Name)
		}
	}
	for _, e := range entries {
		m.domains[e.Name] = e.Params
		// VPLimits may touch the PMIC; only compute it when logged.
		if ce := m.log.Check(zap.DebugLevel, "pmic registered"); ce != nil {
			vmin, vmax := e.Params.VPLimits()
			ce.Write(
				zap.String("domain", e.Name),
				zap.Uint16("slave", e.Params.I2CSlaveAddr),
				zap.Uint8("volt_reg", e.Params.VoltRegAddr),
				zap.Uint8("cmd_reg", e.Params.CmdRegAddr),
				zap.Uint8("vsel_min", vmin),
				zap.Uint8("vsel_max", vmax))
		}
	}
	return nil
}

// Domain returns the rail attached to name, if any.
func (m *Manager) Domain(name string) (*Params, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.domains[name]
	return p, p != nil
}

// Registered returns the names of the domains with an attached rail, in the
// order the manager was created with.
func (m *Manager) Registered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, d := range m.order {
		if m.domains[d] != nil {
			out = append(out, d)
		}
	}
	return out
}
