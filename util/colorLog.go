// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"

	"github.com/bitmark-inc/logger"
)

// ANSI colour codes
const (
	CoReset = "\x1b[0m"
	CoRed   = "\x1b[31m"
	CoGreen = "\x1b[32m"
	CoCyan  = "\x1b[36m"
)

// Colour - wrap text in a colour code
func Colour(color string, message string) string {
	return color + message + CoReset
}

// LogDebug - print message in Debug level with assigned color
func LogDebug(log *logger.L, color string, message string) {
	log.Debugf("%s%s%s", color, message, CoReset)
}

// LogInfo - print message in Info level with assigned color
func LogInfo(log *logger.L, color string, message string) {
	log.Infof("%s%s%s", color, message, CoReset)
}

// LogDiff - log values added and removed between two snapshots
//
// additions are green and removals red
func LogDiff[T any](log *logger.L, added []T, removed []T) {
	for _, v := range added {
		LogInfo(log, CoGreen, fmt.Sprintf("+ %v", v))
	}
	for _, v := range removed {
		LogInfo(log, CoRed, fmt.Sprintf("- %v", v))
	}
}
