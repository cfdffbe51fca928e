// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package twl6030

import (
	"sync"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/pmic/twl"
)

const (
	// RegSMPSOffset is the efuse shadow selecting the SMPS voltage range.
	RegSMPSOffset uint8 = 0xE0
	// SMPSOffsetHigh set in RegSMPSOffset selects the 0.7V - 1.4V range.
	SMPSOffsetHigh uint8 = 1 << 3

	// VselHigh is the hardcoded 1.35V step.
	VselHigh uint8 = 0x3A
	// UVHigh is the output at VselHigh.
	UVHigh uint32 = 1350000
	// VselMaxLinear is the last selector following the linear encoding.
	VselMaxLinear uint8 = 0x39
)

// Opts holds the configuration options.
type Opts struct {
	Logger *zap.Logger
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{}

// Dev is a TWL6030 power management companion.
type Dev struct {
	t   *twl.Dev
	log *zap.Logger

	once   sync.Once
	offset uint8
	err    error
}

// New returns a TWL6030 on bus. Nothing is read until a conversion or
// Offset is called.
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

// Offset returns the SMPS_OFFSET efuse value.
//
// The register is read on the first call only. If that read failed, the
// offset is 0 and the read error is returned on every call.
func (d *Dev) Offset() (uint8, error) {
	d.once.Do(func() {
		d.offset, d.err = d.t.ReadU8(twl.TWL6030ID0, RegSMPSOffset)
		if d.err != nil {
			d.offset = 0
			d.log.Warn("SMPS_OFFSET read failed, assuming 0.6V - 1.3V range", zap.Error(d.err))
		}
	})
	return d.offset, d.err
}

func (d *Dev) highRange() bool {
	off, _ := d.Offset()
	return off&SMPSOffsetHigh != 0
}

// VselToUV returns the SMPS output for vsel. vsel 0 means the rail is off.
func (d *Dev) VselToUV(vsel uint8) uint32 {
	return vselToUV(d.highRange(), vsel)
}

// UVToVsel returns the lowest vsel producing at least uv.
//
// UVHigh always maps to VselHigh. Other voltages above the linear range
// saturate to VselHigh and are logged as an error.
func (d *Dev) UVToVsel(uv uint32) uint8 {
	high := d.highRange()
	switch uv {
	case 0:
		return 0
	case UVHigh:
		return VselHigh
	}
	if limit := vselToUV(high, VselMaxLinear); uv > limit {
		d.log.Error("out of range, no mapped vsel",
			zap.Uint32("uv", uv), zap.Uint32("max", limit))
		return VselHigh
	}
	return uvToVsel(high, uv)
}

func (d *Dev) String() string {
	return "TWL6030"
}

func vselToUV(high bool, vsel uint8) uint32 {
	if vsel == 0 {
		return 0
	}
	if vsel == VselHigh {
		return UVHigh
	}
	if high {
		return ((uint32(vsel)-1)*1266 + 70900) * 10
	}
	return ((uint32(vsel)-1)*1266 + 60770) * 10
}

func uvToVsel(high bool, uv uint32) uint8 {
	off := uint32(607700)
	if high {
		off = 709000
	}
	return uint8((uv-off+12660-1)/12660 + 1)
}
