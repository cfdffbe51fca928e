// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package omaptwl describes how TWL power companions feed the voltage
// domains of OMAP3 and OMAP4 boards.
//
// OMAP34xx/36xx use a TWL4030: VDD1 feeds mpu and VDD2 feeds core.
//
// OMAP443x use a TWL6030: SMPS1 feeds mpu, SMPS5 feeds iva and SMPS3 feeds
// core. On OMAP446x the mpu domain moves to an external TPS6236x, and core is
// fed by SMPS1 instead of SMPS3.
//
// The tables are built fresh on every call, so Init may be called more than
// once.
package omaptwl
