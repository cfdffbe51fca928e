// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// omaptwl registers the TWL rails of an OMAP board and prints them.
//
// Usage:
//
//	omaptwl -soc OMAP3630 -sr on
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/pmic/omap"
	"github.com/GermanBionicSystems/pmic/omaptwl"
	"github.com/GermanBionicSystems/pmic/voltdm"
)

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	out := zapcore.AddSync(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		out = zapcore.AddSync(colorable.NewColorableStderr())
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), out, level))
}

func printRails(w io.Writer, m *voltdm.Manager) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tSLAVE\tVOLT\tCMD\tVDDMIN\tVDDMAX\tVSEL\tRAMP")
	for _, name := range m.Registered() {
		p, _ := m.Domain(name)
		vmin, vmax := p.VPLimits()
		fmt.Fprintf(tw, "%s\t0x%02X\t0x%02X\t0x%02X\t%s\t%s\t0x%02X-0x%02X\t%s\n",
			name, p.I2CSlaveAddr, p.VoltRegAddr, p.CmdRegAddr,
			p.Voltage(vmin), p.Voltage(vmax), vmin, vmax,
			p.RampDelay(p.VPVddMin, p.VPVddMax))
	}
	return tw.Flush()
}

func mainImpl() error {
	bus := flag.String("bus", "", "I²C bus to use")
	soc := flag.String("soc", "", "OMAP chip: OMAP3430, OMAP3630, OMAP4430 or OMAP4460")
	sr := flag.String("sr", "", "set the TWL4030 SmartReflex bit: on or off")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	chip, err := omap.ParseChip(*soc)
	if err != nil {
		return err
	}
	var enable bool
	switch *sr {
	case "":
	case "on":
		enable = true
	case "off":
	default:
		return fmt.Errorf("-sr must be on or off, got %q", *sr)
	}

	log := newLogger(*verbose)
	defer log.Sync()

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*bus)
	if err != nil {
		return err
	}
	defer b.Close()

	board := omaptwl.New(b, &omaptwl.Opts{Logger: log})
	m := voltdm.NewManager(&voltdm.Opts{Logger: log.Named("voltdm")}, "mpu", "core", "iva")
	if err := board.Init(m, chip); err != nil {
		return err
	}
	if *sr != "" {
		if !chip.Is34xx() {
			return fmt.Errorf("%s has no TWL4030 SmartReflex bit", chip)
		}
		if err := board.SetSRBit(enable); err != nil {
			return err
		}
		log.Info("SmartReflex bit set", zap.Bool("enable", enable))
	}
	return printRails(os.Stdout, m)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "omaptwl: %s.\n", err)
		os.Exit(1)
	}
}
