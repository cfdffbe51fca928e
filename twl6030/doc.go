// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package twl6030 supports the SMPS voltage encoding of the Texas Instruments
// TWL6030 power management companion used with OMAP443x/446x.
//
// Depending on the SMPS_OFFSET efuse, the standard mode range is either
// 0.6V - 1.3V or 0.7V - 1.4V. TWL6030 ES1.0 has the efuse programmed to all
// 0's, starting from ES1.1 it is programmed to 1. The efuse is read once, the
// first time a conversion needs it.
//
// There is no formula above 1.3V; those steps are hardcoded. Only 1.35V
// (vsel 0x3A), used by the 1GHz OPP of OMAP4430, is supported.
package twl6030
