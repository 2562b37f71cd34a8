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
	"math"
)

// CapacityPlanner computes the output buffer length needed before
// a transform runs. Override a single direction by embedding DefaultPlanner.
type CapacityPlanner interface {
	EncodeOutputLength(input []byte) (int, error)
	DecodeOutputLength(input []byte) (int, error)
}

// DefaultPlanner sizes outputs exactly for well-formed input.
type DefaultPlanner struct{}

// EncodeOutputLength returns 4 for inputs shorter than 3 bytes,
// otherwise 4 symbols for every started group of 3 bytes.
func (DefaultPlanner) EncodeOutputLength(input []byte) (int, error) {
	return encodedLen(len(input))
}

// DecodeOutputLength returns 4 for inputs shorter than 4 symbols,
// otherwise 3 bytes for every full group of 4 symbols,
// minus one for each padding symbol found anywhere in the input.
func (DefaultPlanner) DecodeOutputLength(input []byte) (int, error) {
	if len(input) < 4 {
		return 4, nil
	}

	length := (len(input) / 4) * 3

	for _, symbol := range input {
		if symbol == PaddingSymbol {
			length--
		}
	}

	// NOTE: Padding-only input would otherwise go negative.
	if length < 0 {
		return 0, nil
	}

	return length, nil
}

func encodedLen(inputLen int) (int, error) {
	if inputLen < 3 {
		return 4, nil
	}

	groups := inputLen / 3
	if inputLen%3 != 0 {
		groups++
	}

	if groups > math.MaxInt/4 {
		return 0, ErrCapacityOverflow
	}

	return groups * 4, nil
}

// HeadroomPlanner over-allocates the default capacity by Extra bytes.
// A negative Extra under-allocates, which the Service rejects.
type HeadroomPlanner struct {
	Extra int
}

func NewHeadroomPlanner(extra int) *HeadroomPlanner {
	return &HeadroomPlanner{Extra: extra}
}

func (p *HeadroomPlanner) EncodeOutputLength(input []byte) (int, error) {
	length, err := DefaultPlanner{}.EncodeOutputLength(input)
	if err != nil {
		return 0, err
	}

	return p.add(length)
}

func (p *HeadroomPlanner) DecodeOutputLength(input []byte) (int, error) {
	length, err := DefaultPlanner{}.DecodeOutputLength(input)
	if err != nil {
		return 0, err
	}

	return p.add(length)
}

func (p *HeadroomPlanner) add(length int) (int, error) {
	if p.Extra > 0 && length > math.MaxInt-p.Extra {
		return 0, ErrCapacityOverflow
	}

	return length + p.Extra, nil
}

// PlannerFuncs adapts plain functions into a CapacityPlanner.
// A nil func falls back to DefaultPlanner.
type PlannerFuncs struct {
	Encode func(input []byte) (int, error)
	Decode func(input []byte) (int, error)
}

func (p PlannerFuncs) EncodeOutputLength(input []byte) (int, error) {
	if p.Encode == nil {
		return DefaultPlanner{}.EncodeOutputLength(input)
	}

	return p.Encode(input)
}

func (p PlannerFuncs) DecodeOutputLength(input []byte) (int, error) {
	if p.Decode == nil {
		return DefaultPlanner{}.DecodeOutputLength(input)
	}

	return p.Decode(input)
}
