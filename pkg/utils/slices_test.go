/*
Copyright 2026 The KeySearch Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utils_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keysearch/keysearch/pkg/utils"
)

func TestSliceMap(t *testing.T) {
	assert.Nil(t, utils.SliceMap(nil, func(i int) int { return i }))

	doubled := utils.SliceMap([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	asStrings := utils.SliceMap([]int{7, 8}, strconv.Itoa)
	assert.Equal(t, []string{"7", "8"}, asStrings)
}

func TestSliceMapE(t *testing.T) {
	res, err := utils.SliceMapE([]string{"1", "2"}, strconv.Atoi)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res)

	_, err = utils.SliceMapE([]string{"1", "x"}, strconv.Atoi)
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = utils.SliceMapE([]int{1}, func(int) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"w2": 1, "w1": 2, "w3": 3}
	assert.Equal(t, []string{"w1", "w2", "w3"}, utils.SortedKeys(m))
	assert.Empty(t, utils.SortedKeys(map[string]int{}))
}
