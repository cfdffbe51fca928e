// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omaptwl

import (
	"github.com/GermanBionicSystems/pmic/voltdm"
)

const (
	omap3SRI2CSlaveAddr   uint16 = 0x12
	omap3VDDMPUSRCtrlReg  uint8  = 0x00
	omap3VDDCoreSRCtrlReg uint8  = 0x01
	omap3VPErrorOffset    uint8  = 0x00
	omap3VPVStepMin       uint8  = 0x01
	omap3VPVStepMax       uint8  = 0x04
	omap3VPTimeoutUS      uint32 = 200

	omap3430VP1VddMin uint32 = 850000
	omap3430VP1VddMax uint32 = 1425000
	omap3430VP2VddMin uint32 = 900000
	omap3430VP2VddMax uint32 = 1150000
	omap3630VP1VddMin uint32 = 900000
	omap3630VP1VddMax uint32 = 1350000
	omap3630VP2VddMin uint32 = 900000
	omap3630VP2VddMax uint32 = 1200000
)

const (
	omap4SRI2CSlaveAddr   uint16 = 0x12
	omap4VDDMPUSRVoltReg  uint8  = 0x55
	omap4VDDMPUSRCmdReg   uint8  = 0x56
	omap4VDDIVASRVoltReg  uint8  = 0x5B
	omap4VDDIVASRCmdReg   uint8  = 0x5C
	omap4VDDCoreSRVoltReg uint8  = 0x61
	omap4VDDCoreSRCmdReg  uint8  = 0x62
	omap4VPErrorOffset    uint8  = 0x00
	omap4VPVStepMin       uint8  = 0x01
	omap4VPVStepMax       uint8  = 0x04
	omap4VPCoreVStepMax   uint8  = 0x04
	omap4VPTimeoutUS      uint32 = 200

	omap4VPMPUVddMin  uint32 = 830000
	omap4VPMPUVddMax  uint32 = 1410000
	omap4VPIVAVddMin  uint32 = 830000
	omap4VPIVAVddMax  uint32 = 1260000
	omap4VPCoreVddMin uint32 = 830000
	omap4VPCoreVddMax uint32 = 1200000

	omap4460VPMPUVddMin  uint32 = 830000
	omap4460VPMPUVddMax  uint32 = 1375000
	omap4460VPIVAVddMin  uint32 = 830000
	omap4460VPIVAVddMax  uint32 = 1291000
	omap4460VPCoreVddMin uint32 = 830000
	omap4460VPCoreVddMax uint32 = 1127000
)

// omap3Rails returns the OMAP3430 rails, fed by a TWL4030.
func omap3Rails(conv voltdm.Converter) voltdm.Map {
	mpu := omap3Base(conv)
	mpu.VPVddMin = omap3430VP1VddMin
	mpu.VPVddMax = omap3430VP1VddMax
	mpu.VoltRegAddr = omap3VDDMPUSRCtrlReg

	core := omap3Base(conv)
	core.VPVddMin = omap3430VP2VddMin
	core.VPVddMax = omap3430VP2VddMax
	core.VoltRegAddr = omap3VDDCoreSRCtrlReg

	return voltdm.Map{
		{Name: "mpu", Params: mpu},
		{Name: "core", Params: core},
		{},
	}
}

func omap3Base(conv voltdm.Converter) *voltdm.Params {
	return &voltdm.Params{
		SlewRate:      4000,
		StepSize:      12500,
		VPErrorOffset: omap3VPErrorOffset,
		VPVStepMin:    omap3VPVStepMin,
		VPVStepMax:    omap3VPVStepMax,
		VPTimeoutUS:   omap3VPTimeoutUS,
		I2CSlaveAddr:  omap3SRI2CSlaveAddr,
		I2CHighSpeed:  true,
		Converter:     conv,
	}
}

// omap4Rails returns the OMAP4430 rails, fed by a TWL6030.
func omap4Rails(conv voltdm.Converter) voltdm.Map {
	mpu := omap4Base(conv)
	mpu.VPVddMin = omap4VPMPUVddMin
	mpu.VPVddMax = omap4VPMPUVddMax
	mpu.VoltRegAddr = omap4VDDMPUSRVoltReg
	mpu.CmdRegAddr = omap4VDDMPUSRCmdReg

	core := omap4Base(conv)
	core.StartupTime = 500
	core.ShutdownTime = 500
	core.VPVStepMax = omap4VPCoreVStepMax
	core.VPVddMin = omap4VPCoreVddMin
	core.VPVddMax = omap4VPCoreVddMax
	core.VoltRegAddr = omap4VDDCoreSRVoltReg
	core.CmdRegAddr = omap4VDDCoreSRCmdReg

	iva := omap4Base(conv)
	iva.VPVddMin = omap4VPIVAVddMin
	iva.VPVddMax = omap4VPIVAVddMax
	iva.VoltRegAddr = omap4VDDIVASRVoltReg
	iva.CmdRegAddr = omap4VDDIVASRCmdReg

	return voltdm.Map{
		{Name: "mpu", Params: mpu},
		{Name: "core", Params: core},
		{Name: "iva", Params: iva},
		{},
	}
}

func omap4Base(conv voltdm.Converter) *voltdm.Params {
	return &voltdm.Params{
		SlewRate:      9000,
		StepSize:      12660,
		SwitchOnTime:  549,
		VPErrorOffset: omap4VPErrorOffset,
		VPVStepMin:    omap4VPVStepMin,
		VPVStepMax:    omap4VPVStepMax,
		VPTimeoutUS:   omap4VPTimeoutUS,
		I2CSlaveAddr:  omap4SRI2CSlaveAddr,
		I2CHighSpeed:  true,
		I2CSCLLLow:    0x28,
		I2CSCLLHigh:   0x2C,
		I2CHSCLLLow:   0x0B,
		I2CHSCLLHigh:  0x00,
		Converter:     conv,
	}
}

// patch changes the rail named in a freshly built map.
type patch struct {
	rail  string
	apply func(p *voltdm.Params)
}

func limits(vmin, vmax uint32) func(p *voltdm.Params) {
	return func(p *voltdm.Params) {
		p.VPVddMin = vmin
		p.VPVddMax = vmax
	}
}

// omap3630 reuses the OMAP3430 rails with tighter limits.
var omap3630 = []patch{
	{"mpu", limits(omap3630VP1VddMin, omap3630VP1VddMax)},
	{"core", limits(omap3630VP2VddMin, omap3630VP2VddMax)},
}

// omap446x feeds core from SMPS1 instead of SMPS3.
var omap446x = []patch{
	{"core", func(p *voltdm.Params) {
		p.VoltRegAddr = omap4VDDMPUSRVoltReg
		p.CmdRegAddr = omap4VDDMPUSRCmdReg
	}},
	{"mpu", limits(omap4460VPMPUVddMin, omap4460VPMPUVddMax)},
	{"core", limits(omap4460VPCoreVddMin, omap4460VPCoreVddMax)},
	{"iva", limits(omap4460VPIVAVddMin, omap4460VPIVAVddMax)},
}

func applyPatches(m voltdm.Map, patches []patch) {
	for _, p := range patches {
		if params, ok := m.Lookup(p.rail); ok {
			p.apply(params)
		}
	}
}
