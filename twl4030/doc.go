// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package twl4030 supports the voltage control side of the Texas Instruments
// TWL4030 (TPS65950) power management companion used with OMAP34xx/36xx.
//
// VDD1 and VDD2 are programmed in 12.5mV steps from 600mV. The SmartReflex
// enable bit in DCDC_GLOBAL_CFG selects whether the OMAP voltage processor
// drives them over the SmartReflex I²C link.
package twl4030
