// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pmic is a container for the TWL power management companion
// drivers of OMAP boards.
//
// twl4030 and twl6030 translate between PMIC voltage selectors and
// microvolts, voltdm describes the rails feeding each voltage domain, and
// omaptwl binds both to a given OMAP chip.
package pmic
