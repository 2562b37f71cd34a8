// Copyright 2018 SumUp Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base64

import (
	"errors"
)

// NOTE: `ErrIndexOutOfRange` is unreachable with correct bit-masking,
// seeing it means the engine itself is broken.
var (
	ErrEmptyInput           = errors.New("input cannot be empty")
	ErrInvalidCharacter     = errors.New("character not found in base64 table")
	ErrIndexOutOfRange      = errors.New("table indexing failed")
	ErrInsufficientCapacity = errors.New("provided capacity is smaller than required")
	ErrCapacityOverflow     = errors.New("required capacity overflows int")
	ErrInvalidLength        = errors.New("encoded input length is not a multiple of 4")
)
