// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package voltdm describes the PMIC side of an OMAP voltage domain.
//
// A voltage domain (mpu, core, iva) is scaled by the SoC voltage processor
// (VP), which sends selector (vsel) codes to a PMIC over the SmartReflex I²C
// link. Params carries everything the VP needs to know about the PMIC rail
// feeding a domain: slew rate, VP step and limit settings, I²C timing and
// register addresses, plus the Converter translating between selectors and
// microvolts.
//
// A Map associates domain names with their Params and is handed to a
// Registrar. Manager is an in-memory Registrar.
package voltdm
