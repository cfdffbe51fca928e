// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package omap identifies the Texas Instruments OMAP SoCs the TWL power
// companions are paired with.
//
// Detecting the running chip is left to the caller; this package only names
// the chips and groups them into families.
package omap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChip is returned by ParseChip for names it does not know.
var ErrUnknownChip = errors.New("omap: unknown chip")

// Chip is a specific OMAP SoC.
type Chip string

const (
	Unknown  Chip = ""
	OMAP3430 Chip = "OMAP3430" // OMAP34xx, paired with TWL4030.
	OMAP3630 Chip = "OMAP3630" // OMAP36xx, 45nm shrink of the 3430.
	OMAP4430 Chip = "OMAP4430" // OMAP443x, paired with TWL6030.
	OMAP4460 Chip = "OMAP4460" // OMAP446x, TWL6030 plus TPS6236x for MPU.
)

var chips = []Chip{OMAP3430, OMAP3630, OMAP4430, OMAP4460}

// ParseChip returns the Chip named s, ignoring case.
func ParseChip(s string) (Chip, error) {
	for _, c := range chips {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownChip, s)
}

// Is34xx reports whether c belongs to the OMAP34xx/36xx family.
func (c Chip) Is34xx() bool {
	return c == OMAP3430 || c == OMAP3630
}

// Is3630 reports whether c is an OMAP36xx.
func (c Chip) Is3630() bool {
	return c == OMAP3630
}

// Is443x reports whether c is an OMAP443x.
func (c Chip) Is443x() bool {
	return c == OMAP4430
}

// Is446x reports whether c is an OMAP446x.
func (c Chip) Is446x() bool {
	return c == OMAP4460
}

func (c Chip) String() string {
	if c == Unknown {
		return "unknown"
	}
	return string(c)
}
