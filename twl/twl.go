// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package twl provides register access to the sub-modules of the Texas
// Instruments TWL4030 and TWL6030 power management companion chips.
//
// A TWL chip answers on several I²C slave addresses. Each functional block
// (module) lives behind one of them, starting at a base register offset.
// Registers are addressed relative to that base.
package twl

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Module identifies a TWL functional block.
type Module struct {
	Name string
	Addr uint16 // I²C slave address.
	Base uint8  // First register of the block.
}

func (m Module) String() string {
	return m.Name
}

var (
	// TWL4030PMReceiver is the power management receiver block of the
	// TWL4030, holding the DCDC and SmartReflex controls.
	TWL4030PMReceiver = Module{Name: "TWL4030_PM_RECEIVER", Addr: 0x4B, Base: 0x5B}
	// TWL6030ID0 is the first slave of the TWL6030, holding the SMPS
	// configuration and efuse shadows.
	TWL6030ID0 = Module{Name: "TWL6030_ID0", Addr: 0x48, Base: 0x00}
)

// Dev is a TWL chip on an I²C bus.
type Dev struct {
	bus i2c.Bus
}

// New returns a Dev that talks to the chip's modules over bus.
func New(bus i2c.Bus) *Dev {
	return &Dev{bus: bus}
}

// ReadU8 reads the 8 bit register reg of module m.
func (d *Dev) ReadU8(m Module, reg uint8) (uint8, error) {
	c := i2c.Dev{Bus: d.bus, Addr: m.Addr}
	rx := make([]byte, 1)
	if err := c.Tx([]byte{m.Base + reg}, rx); err != nil {
		return 0, fmt.Errorf("twl: read %s reg 0x%02X: %w", m, reg, err)
	}
	return rx[0], nil
}

// WriteU8 writes value to the 8 bit register reg of module m.
func (d *Dev) WriteU8(m Module, reg uint8, value uint8) error {
	c := i2c.Dev{Bus: d.bus, Addr: m.Addr}
	if err := c.Tx([]byte{m.Base + reg, value}, nil); err != nil {
		return fmt.Errorf("twl: write %s reg 0x%02X: %w", m, reg, err)
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("twl{%s}", d.bus)
}
