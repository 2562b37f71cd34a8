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
	"github.com/palantir/stacktrace"
)

// MaxExtraCapacity is how far a planner may go past the required capacity.
const MaxExtraCapacity = 1 << 20

// Service encodes and decodes with the standard alphabet.
type Service struct {
	alphabet *Alphabet
	// NOTE: When false, a trailing group shorter than 4 symbols is dropped silently.
	strict bool
}

// NewBase64Service returns a permissive Service.
func NewBase64Service() *Service {
	return &Service{
		alphabet: StdAlphabet,
	}
}

// NewStrictBase64Service returns a Service that rejects encoded input
// whose length is not a multiple of 4 with ErrInvalidLength.
func NewStrictBase64Service() *Service {
	return &Service{
		alphabet: StdAlphabet,
		strict:   true,
	}
}

// Encode converts raw bytes into padded base64 symbols.
// A nil planner means DefaultPlanner.
func (s *Service) Encode(input []byte, planner CapacityPlanner) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	capacity, err := DefaultPlanner{}.EncodeOutputLength(input)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to calculate encoded length")
	}

	if planner != nil {
		plannedCapacity, err := planner.EncodeOutputLength(input)
		if err != nil {
			return nil, stacktrace.Propagate(err, "failed to calculate planned encoded length")
		}

		capacity, err = checkPlannedCapacity(plannedCapacity, capacity)
		if err != nil {
			return nil, err
		}
	}

	output := make([]byte, 0, capacity)

	var staging [3]byte

	count := 0

	for _, b := range input {
		staging[count] = b
		count++

		if count < 3 {
			continue
		}

		output, err = s.appendSymbols(
			output,
			staging[0]>>2,
			((staging[0]&0x03)<<4)|(staging[1]>>4),
			((staging[1]&0x0f)<<2)|(staging[2]>>6),
			staging[2]&0x3f,
		)
		if err != nil {
			return nil, err
		}

		count = 0
	}

	switch count {
	case 1:
		output, err = s.appendSymbols(
			output,
			staging[0]>>2,
			(staging[0]&0x03)<<4,
		)
		if err != nil {
			return nil, err
		}

		output = append(output, PaddingSymbol, PaddingSymbol)
	case 2:
		output, err = s.appendSymbols(
			output,
			staging[0]>>2,
			((staging[0]&0x03)<<4)|(staging[1]>>4),
			(staging[1]&0x0f)<<2,
		)
		if err != nil {
			return nil, err
		}

		output = append(output, PaddingSymbol)
	}

	return output, nil
}

// Decode converts base64 symbols back into raw bytes.
// A nil planner means DefaultPlanner.
func (s *Service) Decode(input []byte, planner CapacityPlanner) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	if s.strict && len(input)%4 != 0 {
		return nil, stacktrace.Propagate(
			ErrInvalidLength,
			"got %d symbols",
			len(input),
		)
	}

	capacity, err := DefaultPlanner{}.DecodeOutputLength(input)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to calculate decoded length")
	}

	if planner != nil {
		plannedCapacity, err := planner.DecodeOutputLength(input)
		if err != nil {
			return nil, stacktrace.Propagate(err, "failed to calculate planned decoded length")
		}

		capacity, err = checkPlannedCapacity(plannedCapacity, capacity)
		if err != nil {
			return nil, err
		}
	}

	output := make([]byte, 0, capacity)

	var staging [4]int

	count := 0

	for offset, symbol := range input {
		index, err := s.alphabet.IndexOf(symbol)
		if err != nil {
			return nil, stacktrace.Propagate(
				err,
				"invalid symbol %q at offset %d",
				symbol,
				offset,
			)
		}

		staging[count] = index
		count++

		if count < 4 {
			continue
		}

		output = append(output, byte((staging[0]<<2)|(staging[1]>>4)))

		if staging[2] != PaddingIndex {
			output = append(output, byte((staging[1]<<4)|(staging[2]>>2)))
		}

		if staging[3] != PaddingIndex {
			output = append(output, byte((staging[2]<<6)|staging[3]))
		}

		count = 0
	}

	return output, nil
}

// Serialize encodes `raw` with DefaultPlanner.
func (s *Service) Serialize(raw []byte) ([]byte, error) {
	return s.Encode(raw, nil)
}

// Deserialize decodes `encoded` with DefaultPlanner.
func (s *Service) Deserialize(encoded []byte) ([]byte, error) {
	return s.Decode(encoded, nil)
}

func (s *Service) appendSymbols(output []byte, indexes ...byte) ([]byte, error) {
	for _, index := range indexes {
		symbol, err := s.alphabet.SymbolAt(int(index))
		if err != nil {
			return nil, stacktrace.Propagate(err, "failed to look up index %d", index)
		}

		output = append(output, symbol)
	}

	return output, nil
}

func checkPlannedCapacity(planned, required int) (int, error) {
	if planned < required {
		return 0, stacktrace.Propagate(
			ErrInsufficientCapacity,
			"planned %d, required %d",
			planned,
			required,
		)
	}

	if planned-required > MaxExtraCapacity {
		return 0, stacktrace.Propagate(
			ErrCapacityOverflow,
			"planned %d exceeds required %d by more than %d",
			planned,
			required,
			MaxExtraCapacity,
		)
	}

	return planned, nil
}
