// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omaptwl

import (
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/pmic/omap"
	"github.com/GermanBionicSystems/pmic/twl4030"
	"github.com/GermanBionicSystems/pmic/twl6030"
	"github.com/GermanBionicSystems/pmic/voltdm"
)

// Opts holds the configuration options.
type Opts struct {
	Logger *zap.Logger
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{}

// Board is an OMAP board with its TWL power companion on an I²C bus.
//
// Only the companion matching the chip passed to Init or Rails is ever
// accessed.
type Board struct {
	TWL4030 *twl4030.Dev
	TWL6030 *twl6030.Dev

	log *zap.Logger
}

// New returns a Board whose TWL companion is on bus.
func New(bus i2c.Bus, opts *Opts) *Board {
	if opts == nil {
		opts = &DefaultOpts
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Board{
		TWL4030: twl4030.New(bus, &twl4030.Opts{Logger: log.Named("twl4030")}),
		TWL6030: twl6030.New(bus, &twl6030.Opts{Logger: log.Named("twl6030")}),
		log:     log,
	}
}

// Rails returns the rails registered for chip, or nil when the chip is not
// driven by a TWL companion.
//
// On OMAP446x the mpu rail is left out since it is fed by a TPS6236x.
func (b *Board) Rails(chip omap.Chip) voltdm.Map {
	switch {
	case chip.Is34xx():
		m := omap3Rails(b.TWL4030)
		if chip.Is3630() {
			applyPatches(m, omap3630)
		}
		return m
	case chip.Is443x():
		return omap4Rails(b.TWL6030)
	case chip.Is446x():
		m := omap4Rails(b.TWL6030)
		applyPatches(m, omap446x)
		return m[1:]
	default:
		return nil
	}
}

// Init registers the rails of chip with r and returns r's result.
//
// Chips without TWL rails are not an error: nothing is registered.
func (b *Board) Init(r voltdm.Registrar, chip omap.Chip) error {
	m := b.Rails(chip)
	if m == nil {
		b.log.Debug("no TWL rails", zap.Stringer("chip", chip))
		return nil
	}
	b.log.Debug("registering TWL rails",
		zap.Stringer("chip", chip), zap.Strings("rails", m.Names()))
	return r.Register(m)
}

// SetSRBit sets or clears the SmartReflex enable bit of the board's
// TWL4030. See twl4030.Dev.SetSRBit.
func (b *Board) SetSRBit(enable bool) error {
	return b.TWL4030.SetSRBit(enable)
}
