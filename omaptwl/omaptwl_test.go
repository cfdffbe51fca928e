// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omaptwl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/GermanBionicSystems/pmic/omap"
	"github.com/GermanBionicSystems/pmic/voltdm"
)

// recorder is a voltdm.Registrar keeping every map it is given.
type recorder struct {
	calls []voltdm.Map
	err   error
}

func (r *recorder) Register(m voltdm.Map) error {
	r.calls = append(r.calls, m)
	return r.err
}

var ignoreConverter = cmpopts.IgnoreFields(voltdm.Params{}, "Converter")

// newBoard returns a Board on a bus that fails any transaction.
func newBoard(t *testing.T) *Board {
	b := &i2ctest.Playback{DontPanic: true}
	t.Cleanup(func() {
		if err := b.Close(); err != nil {
			t.Error(err)
		}
	})
	return New(b, nil)
}

func TestInitUnknownChip(t *testing.T) {
	for _, chip := range []omap.Chip{omap.Unknown, omap.Chip("OMAP5430")} {
		r := &recorder{err: errors.New("must not be called")}
		if err := newBoard(t).Init(r, chip); err != nil {
			t.Fatalf("Init(%s) = %v", chip, err)
		}
		if len(r.calls) != 0 {
			t.Fatalf("Init(%s) registered %d maps", chip, len(r.calls))
		}
	}
}

func TestInitNames(t *testing.T) {
	for _, test := range []struct {
		chip omap.Chip
		want []string
	}{
		{omap.OMAP3430, []string{"mpu", "core"}},
		{omap.OMAP3630, []string{"mpu", "core"}},
		{omap.OMAP4430, []string{"mpu", "core", "iva"}},
		{omap.OMAP4460, []string{"core", "iva"}},
	} {
		t.Run(string(test.chip), func(t *testing.T) {
			r := &recorder{}
			if err := newBoard(t).Init(r, test.chip); err != nil {
				t.Fatal(err)
			}
			if len(r.calls) != 1 {
				t.Fatalf("expected 1 registration, got %d", len(r.calls))
			}
			if diff := cmp.Diff(test.want, r.calls[0].Names()); diff != "" {
				t.Fatalf("registered rails mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInitReturnsRegistrarError(t *testing.T) {
	want := errors.New("voltdm busy")
	r := &recorder{err: want}
	if err := newBoard(t).Init(r, omap.OMAP4430); err != want {
		t.Fatalf("Init() = %v, want %v", err, want)
	}
}

func TestConverterFamily(t *testing.T) {
	b := newBoard(t)
	for _, e := range b.Rails(omap.OMAP3630).Entries() {
		if e.Params.Converter != b.TWL4030 {
			t.Errorf("OMAP3630 %s: not converted by the TWL4030", e.Name)
		}
	}
	for _, chip := range []omap.Chip{omap.OMAP4430, omap.OMAP4460} {
		for _, e := range b.Rails(chip).Entries() {
			if e.Params.Converter != b.TWL6030 {
				t.Errorf("%s %s: not converted by the TWL6030", chip, e.Name)
			}
		}
	}
}

func TestOMAP3Rails(t *testing.T) {
	want := map[omap.Chip]map[string]voltdm.Params{
		omap.OMAP3430: {
			"mpu":  omap3Params(0x00, 850000, 1425000),
			"core": omap3Params(0x01, 900000, 1150000),
		},
		omap.OMAP3630: {
			"mpu":  omap3Params(0x00, 900000, 1350000),
			"core": omap3Params(0x01, 900000, 1200000),
		},
	}
	checkRails(t, want)
}

func omap3Params(reg uint8, vmin, vmax uint32) voltdm.Params {
	return voltdm.Params{
		SlewRate:      4000,
		StepSize:      12500,
		VPErrorOffset: 0x00,
		VPVStepMin:    0x01,
		VPVStepMax:    0x04,
		VPVddMin:      vmin,
		VPVddMax:      vmax,
		VPTimeoutUS:   200,
		I2CSlaveAddr:  0x12,
		VoltRegAddr:   reg,
		I2CHighSpeed:  true,
	}
}

func TestOMAP4Rails(t *testing.T) {
	core := omap4Params(0x61, 0x62, 830000, 1200000)
	core.StartupTime = 500
	core.ShutdownTime = 500
	core4460 := core
	core4460.VoltRegAddr = 0x55
	core4460.CmdRegAddr = 0x56
	core4460.VPVddMax = 1127000

	want := map[omap.Chip]map[string]voltdm.Params{
		omap.OMAP4430: {
			"mpu":  omap4Params(0x55, 0x56, 830000, 1410000),
			"core": core,
			"iva":  omap4Params(0x5B, 0x5C, 830000, 1260000),
		},
		omap.OMAP4460: {
			"core": core4460,
			"iva":  omap4Params(0x5B, 0x5C, 830000, 1291000),
		},
	}
	checkRails(t, want)
}

func omap4Params(volt, cmd uint8, vmin, vmax uint32) voltdm.Params {
	return voltdm.Params{
		SlewRate:      9000,
		StepSize:      12660,
		SwitchOnTime:  549,
		VPErrorOffset: 0x00,
		VPVStepMin:    0x01,
		VPVStepMax:    0x04,
		VPVddMin:      vmin,
		VPVddMax:      vmax,
		VPTimeoutUS:   200,
		I2CSlaveAddr:  0x12,
		VoltRegAddr:   volt,
		CmdRegAddr:    cmd,
		I2CHighSpeed:  true,
		I2CSCLLLow:    0x28,
		I2CSCLLHigh:   0x2C,
		I2CHSCLLLow:   0x0B,
		I2CHSCLLHigh:  0x00,
	}
}

func checkRails(t *testing.T, want map[omap.Chip]map[string]voltdm.Params) {
	t.Helper()
	b := newBoard(t)
	for chip, rails := range want {
		m := b.Rails(chip)
		if len(m.Entries()) != len(rails) {
			t.Errorf("%s: got rails %v", chip, m.Names())
		}
		for name, w := range rails {
			got, ok := m.Lookup(name)
			if !ok {
				t.Errorf("%s: missing rail %s", chip, name)
				continue
			}
			if diff := cmp.Diff(w, *got, ignoreConverter); diff != "" {
				t.Errorf("%s %s mismatch (-want +got):\n%s", chip, name, diff)
			}
		}
	}
}

func TestOMAP446xCoreUsesMPURegisters(t *testing.T) {
	b := newBoard(t)
	mpu, _ := b.Rails(omap.OMAP4430).Lookup("mpu")
	core, _ := b.Rails(omap.OMAP4460).Lookup("core")
	if core.VoltRegAddr != mpu.VoltRegAddr || core.CmdRegAddr != mpu.CmdRegAddr {
		t.Fatalf("core regs 0x%02X/0x%02X, want mpu regs 0x%02X/0x%02X",
			core.VoltRegAddr, core.CmdRegAddr, mpu.VoltRegAddr, mpu.CmdRegAddr)
	}
}

func TestInitTwice(t *testing.T) {
	b := newBoard(t)
	for _, chip := range []omap.Chip{omap.OMAP3630, omap.OMAP4460} {
		r := &recorder{}
		if err := b.Init(r, chip); err != nil {
			t.Fatal(err)
		}
		if err := b.Init(r, chip); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r.calls[0], r.calls[1], ignoreConverter); diff != "" {
			t.Fatalf("%s: second Init differs (-first +second):\n%s", chip, diff)
		}
		first, _ := r.calls[0].Lookup("core")
		second, _ := r.calls[1].Lookup("core")
		if first == second {
			t.Fatalf("%s: records are shared between calls", chip)
		}
	}
}

func TestInitWithManager(t *testing.T) {
	b := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// SMPS_OFFSET, read once for the whole table.
			{Addr: 0x48, W: []byte{0xE0}, R: []byte{0x08}},
		},
		DontPanic: true,
	}
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	m := voltdm.NewManager(&voltdm.Opts{Logger: log}, "mpu", "core", "iva")
	if err := New(b, &Opts{Logger: log}).Init(m, omap.OMAP4430); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"mpu", "core", "iva"}, m.Registered()); diff != "" {
		t.Fatalf("Registered() mismatch (-want +got):\n%s", diff)
	}
	mpu, _ := m.Domain("mpu")
	if vmin, vmax := mpu.VPLimits(); vmin != 0x0B || vmax != 0x39 {
		t.Fatalf("mpu VPLimits() = 0x%02X, 0x%02X", vmin, vmax)
	}
	if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 0 {
		t.Fatalf("unexpected errors: %v", logs.FilterLevelExact(zapcore.ErrorLevel).All())
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestInitUnknownDomain(t *testing.T) {
	m := voltdm.NewManager(nil, "mpu", "core")
	err := newBoard(t).Init(m, omap.OMAP4430)
	if !errors.Is(err, voltdm.ErrUnknownDomain) {
		t.Fatalf("Init() = %v, want %v", err, voltdm.ErrUnknownDomain)
	}
}

func TestSetSRBit(t *testing.T) {
	b := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x4B, W: []byte{0x61}, R: []byte{0x00}},
			{Addr: 0x4B, W: []byte{0x61, 0x08}},
		},
		DontPanic: true,
	}
	if err := New(b, nil).SetSRBit(true); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
}
