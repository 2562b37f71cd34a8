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
	"fmt"
)

const (
	stdSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// PaddingSymbol is not part of the alphabet, but both directions recognize it.
	PaddingSymbol byte = '='
	// PaddingIndex is what IndexOf reports for PaddingSymbol.
	PaddingIndex = 64

	alphabetSize = 64
)

var (
	errAlphabetSize         = fmt.Errorf("alphabet must have exactly %d symbols", alphabetSize)
	errAlphabetDuplicate    = errors.New("alphabet contains a duplicate symbol")
	errAlphabetPadding      = errors.New("alphabet cannot contain the padding symbol")
	errAlphabetNonPrintable = errors.New("alphabet symbols must be printable ASCII")
)

// StdAlphabet is the standard base64 table. It is never mutated after init,
// so it's safe to share between goroutines.
var StdAlphabet = mustNewAlphabet(stdSymbols)

// Alphabet maps indexes in [0,63] to symbols and back.
type Alphabet struct {
	symbols [alphabetSize]byte
}

func newAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) != alphabetSize {
		return nil, errAlphabetSize
	}

	var seen [256]bool

	alphabet := &Alphabet{}
	for i := 0; i < alphabetSize; i++ {
		symbol := symbols[i]

		if symbol < '!' || symbol > '~' {
			return nil, errAlphabetNonPrintable
		}

		if symbol == PaddingSymbol {
			return nil, errAlphabetPadding
		}

		if seen[symbol] {
			return nil, errAlphabetDuplicate
		}

		seen[symbol] = true
		alphabet.symbols[i] = symbol
	}

	return alphabet, nil
}

func mustNewAlphabet(symbols string) *Alphabet {
	alphabet, err := newAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return alphabet
}

// SymbolAt returns the symbol at `index`, ErrIndexOutOfRange outside [0,63].
func (a *Alphabet) SymbolAt(index int) (byte, error) {
	if index < 0 || index >= alphabetSize {
		return 0, ErrIndexOutOfRange
	}

	return a.symbols[index], nil
}

// IndexOf returns the position of symbol, or PaddingIndex for PaddingSymbol.
//
// NOTE: Linear search, the table is only 64 entries long.
func (a *Alphabet) IndexOf(symbol byte) (int, error) {
	if symbol == PaddingSymbol {
		return PaddingIndex, nil
	}

	for index, tableSymbol := range a.symbols {
		if tableSymbol == symbol {
			return index, nil
		}
	}

	return 0, ErrInvalidCharacter
}

func (a *Alphabet) String() string {
	return string(a.symbols[:])
}
