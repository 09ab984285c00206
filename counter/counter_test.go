// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/counter"
)

// test incrementing and resetting a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start")

	c1.Increment()
	c1.Increment()
	c1.Increment()
	assert.Equal(t, uint64(3), c1.Uint64(), "after increment")

	assert.Equal(t, uint64(10), c1.Add(7), "after add")

	assert.Equal(t, uint64(10), c1.Reset(), "reset returns previous")
	assert.True(t, c1.IsZero(), "counter did not return to zero")
}

func TestConcurrentIncrement(t *testing.T) {

	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const loops = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*loops), c.Uint64(), "total")
}
