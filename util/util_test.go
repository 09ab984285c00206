// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/values.txt", util.EnsureAbsolute("/data", "values.txt"), "relative")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./sub/../log"), "cleaned")
	assert.Equal(t, "/tmp/x", util.EnsureAbsolute("/data", "/tmp/x"), "absolute")
}

func TestEnsureExists(t *testing.T) {
	dir, err := os.MkdirTemp("", "util-test-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "file")
	assert.False(t, util.EnsureFileExists(file), "before create")

	err = os.WriteFile(file, []byte("x\n"), 0600)
	assert.Nil(t, err, "write")

	assert.True(t, util.EnsureFileExists(file), "file")
	assert.False(t, util.EnsureFileExists(dir), "directory is not a file")
	assert.True(t, util.EnsureDirectoryExists(dir), "directory")
	assert.False(t, util.EnsureDirectoryExists(file), "file is not a directory")
}

func TestFormatBytes(t *testing.T) {
	actual := util.FormatBytes("key", []byte{0x01, 0xab, 0x00})
	assert.Equal(t, "key := []byte{\n\t0x01, 0xab, 0x00, \n}", actual)

	assert.Equal(t, "k := []byte{}", util.FormatBytes("k", nil))

	data := make([]byte, 9)
	expected := "d := []byte{\n\t" +
		"0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, \n\t" +
		"0x00, \n}"
	assert.Equal(t, expected, util.FormatBytes("d", data))
}

func TestColour(t *testing.T) {
	assert.Equal(t, "\x1b[32mok\x1b[0m", util.Colour(util.CoGreen, "ok"))
}
