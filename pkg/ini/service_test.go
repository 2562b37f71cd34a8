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

package ini

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIniService_ReadIni(t *testing.T) {
	t.Run(
		"with valid INI `src`, it returns parsed file",
		func(t *testing.T) {
			t.Parallel()

			svc := NewIniService()

			srcArg := []byte(`[secrets]
payload = SGk=
other = PQ==
`)

			actualReturn, actualErr := svc.ReadIni(srcArg)
			require.Nil(t, actualErr)

			section, err := actualReturn.GetSection("secrets")
			require.Nil(t, err)

			assert.Equal(t, "SGk=", section.Key("payload").String())
			assert.Equal(t, "PQ==", section.Key("other").String())
		},
	)

	t.Run(
		"with invalid INI `src`, it returns error",
		func(t *testing.T) {
			t.Parallel()

			svc := NewIniService()

			actualReturn, actualErr := svc.ReadIni([]byte("[unclosed"))

			require.Nil(t, actualReturn)
			assert.NotNil(t, actualErr)
		},
	)
}

func TestIniService_ParseIniFileContents(t *testing.T) {
	t.Run(
		"it skips the empty default section and keeps every other section's values",
		func(t *testing.T) {
			t.Parallel()

			svc := NewIniService()

			file, err := svc.ReadIni([]byte(`[sectionExample]
myKey=example

[sectionExampleAgain]
myOtherKey=exampleother
`))
			require.Nil(t, err)

			actual := svc.ParseIniFileContents(file)

			assert.Equal(t, 2, len(actual.SectionsByName))
			assert.NotContains(t, actual.SectionsByName, DefaultSectionName)

			value, ok := actual.Lookup("sectionExample", "myKey")
			require.True(t, ok)
			assert.Equal(t, "example", value)

			value, ok = actual.Lookup("sectionExampleAgain", "myOtherKey")
			require.True(t, ok)
			assert.Equal(t, "exampleother", value)

			_, ok = actual.Lookup("sectionExample", "missing")
			assert.False(t, ok)

			_, ok = actual.Lookup("missing", "myKey")
			assert.False(t, ok)
		},
	)

	t.Run(
		"it keeps the default section when it has keys",
		func(t *testing.T) {
			t.Parallel()

			svc := NewIniService()

			file, err := svc.ReadIni([]byte("payload = SGk=\n"))
			require.Nil(t, err)

			actual := svc.ParseIniFileContents(file)

			value, ok := actual.Lookup(DefaultSectionName, "payload")
			require.True(t, ok)
			assert.Equal(t, "SGk=", value)
		},
	)
}

func TestIniService_WriteIni(t *testing.T) {
	t.Run(
		"it writes content that reads back the same",
		func(t *testing.T) {
			t.Parallel()

			svc := NewIniService()

			section := NewIniSection("secrets")
			section.Values = append(section.Values, NewIniSectionValue("payload", "aGVsbG8gd29ybGQ="))

			content := NewIniContent()
			content.AddSection(section)

			outputArg := &bytes.Buffer{}

			actualErr := svc.WriteIni(outputArg, content)
			require.Nil(t, actualErr)

			assert.Contains(t, outputArg.String(), "[secrets]")

			file, err := svc.ReadIni(outputArg.Bytes())
			require.Nil(t, err)

			value, ok := svc.ParseIniFileContents(file).Lookup("secrets", "payload")
			require.True(t, ok)
			assert.Equal(t, "aGVsbG8gd29ybGQ=", value)
		},
	)
}
