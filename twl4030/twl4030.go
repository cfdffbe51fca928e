// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twl4030

import (
	"sync"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/pmic/twl"
)

const (
	// DCDCGlobalCfg is the DCDC global configuration register of the power
	// management receiver.
	DCDCGlobalCfg uint8 = 0x06
	// SmartReflexEnable hands VDD1/VDD2 control to the SmartReflex I²C
	// interface.
	SmartReflexEnable uint8 = 1 << 3
)

// VselToUV returns the VDD1/VDD2 output for vsel. vsel 0 is 600mV.
func VselToUV(vsel uint8) uint32 {
	return (uint32(vsel)*125 + 6000) * 100
}

// UVToVsel returns the lowest vsel producing at least uv.
//
// uv must be at least 600000.
func UVToVsel(uv uint32) uint8 {
	return uint8((uv - 600000 + 12500 - 1) / 12500)
}

// Converter is the TWL4030 VDD1/VDD2 selector encoding.
type Converter struct{}

// VselToUV implements voltdm.Converter.
func (Converter) VselToUV(vsel uint8) uint32 {
	return VselToUV(vsel)
}

// UVToVsel implements voltdm.Converter.
func (Converter) UVToVsel(uv uint32) uint8 {
	return UVToVsel(uv)
}

// Opts holds the configuration options.
type Opts struct {
	Logger *zap.Logger
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{}

// Dev is a TWL4030 power management companion.
type Dev struct {
	Converter

	t   *twl.Dev
	log *zap.Logger

	mu     sync.Mutex
	srInit bool
}

// New returns a TWL4030 on bus.
func New(bus i2c.Bus, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Dev{t: twl.New(bus), log: log}
}

// SetSRBit sets or clears the SmartReflex enable bit.
//
// Enabling it is required for voltage scaling through the OMAP SmartReflex
// voltage processor. Boards using the synchronized scaling hardware strategy
// or direct software scaling clear it instead.
//
// It is meant to be called once during board init; further calls still
// proceed but log a warning.
func (d *Dev) SetSRBit(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	const op = "twl4030.SetSRBit"
	if d.srInit {
		d.log.Warn("unexpected multiple calls", zap.String("op", op))
	}
	v, err := d.t.ReadU8(twl.TWL4030PMReceiver, DCDCGlobalCfg)
	if err != nil {
		d.log.Error("error access to TWL4030", zap.String("op", op), zap.Error(err))
		return err
	}
	if enable {
		v |= SmartReflexEnable
	} else {
		v &^= SmartReflexEnable
	}
	if err := d.t.WriteU8(twl.TWL4030PMReceiver, DCDCGlobalCfg, v); err != nil {
		d.log.Error("error access to TWL4030", zap.String("op", op), zap.Error(err))
		return err
	}
	d.srInit = true
	return nil
}

func (d *Dev) String() string {
	return "TWL4030"
}
