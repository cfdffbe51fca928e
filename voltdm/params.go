// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package voltdm

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// Converter translates between PMIC voltage selectors and microvolts.
type Converter interface {
	VselToUV(vsel uint8) uint32
	UVToVsel(uv uint32) uint8
}

// Params is the PMIC description of one voltage rail.
//
// Times are in µs and voltages in µV unless noted otherwise.
type Params struct {
	SlewRate     uint32 // µV/µs
	StepSize     uint32 // µV
	StartupTime  uint32
	ShutdownTime uint32
	SwitchOnTime uint32

	VPErrorOffset uint8
	VPVStepMin    uint8
	VPVStepMax    uint8
	VPVddMin      uint32
	VPVddMax      uint32
	VPTimeoutUS   uint32

	I2CSlaveAddr uint16
	VoltRegAddr  uint8
	CmdRegAddr   uint8
	I2CHighSpeed bool
	I2CSCLLLow   uint8
	I2CSCLLHigh  uint8
	I2CHSCLLLow  uint8
	I2CHSCLLHigh uint8

	Converter Converter
}

// VPLimits returns the selectors the voltage processor is bounded by.
func (p *Params) VPLimits() (vmin, vmax uint8) {
	return p.Converter.UVToVsel(p.VPVddMin), p.Converter.UVToVsel(p.VPVddMax)
}

// Voltage returns the rail output for vsel.
func (p *Params) Voltage(vsel uint8) physic.ElectricPotential {
	return physic.ElectricPotential(p.Converter.VselToUV(vsel)) * physic.MicroVolt
}

// RampDelay returns how long the rail takes to move between from and to at
// its slew rate, rounded up to the next µs.
func (p *Params) RampDelay(from, to uint32) time.Duration {
	if p.SlewRate == 0 {
		return 0
	}
	var diff uint32
	if to > from {
		diff = to - from
	} else {
		diff = from - to
	}
	us := (diff + p.SlewRate - 1) / p.SlewRate
	return time.Duration(us) * time.Microsecond
}
