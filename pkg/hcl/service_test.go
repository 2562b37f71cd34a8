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

package hcl

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/palantir/stacktrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type fakeWriter struct {
	mock.Mock
}

func (f *fakeWriter) Write(p []byte) (n int, err error) {
	args := f.Called(p)
	return args.Int(0), args.Error(1)
}

func TestHclService_Decode(t *testing.T) {
	t.Run(
		"with `src` that is valid HCL, it decodes into tagged struct fields",
		func(t *testing.T) {
			t.Parallel()

			svc := NewHclService()

			var out struct {
				Wrap   int    `hcl:"wrap"`
				Format string `hcl:"format"`
				Strict bool   `hcl:"strict"`
			}

			srcArg := []byte(`
wrap   = 76
format = "hcl"
strict = true
`)

			actualErr := svc.Decode(srcArg, &out)
			require.Nil(t, actualErr)

			assert.Equal(t, 76, out.Wrap)
			assert.Equal(t, "hcl", out.Format)
			assert.True(t, out.Strict)
		},
	)

	t.Run(
		"with `src` that is not HCL, it returns an error",
		func(t *testing.T) {
			t.Parallel()

			svc := NewHclService()

			var out struct{}

			actualErr := svc.Decode([]byte("not hcl"), &out)

			assert.NotNil(t, actualErr)
		},
	)
}

func TestHclService_ParseConfig(t *testing.T) {
	t.Run(
		"with `src` that is valid HCL, it returns its body",
		func(t *testing.T) {
			t.Parallel()

			svc := NewHclService()

			srcArg := []byte(`
payload = "SGk="

secrets {
  other = "PQ=="
}
`)

			actualReturn, actualErr := svc.ParseConfig(srcArg, "in.hcl")
			require.Nil(t, actualErr)

			assert.Contains(t, actualReturn.Attributes, "payload")
			require.Equal(t, 1, len(actualReturn.Blocks))
			assert.Equal(t, "secrets", actualReturn.Blocks[0].Type)
		},
	)

	t.Run(
		"with `src` that is invalid HCL, it returns a parse error with diagnostics",
		func(t *testing.T) {
			t.Parallel()

			svc := NewHclService()

			actualReturn, actualErr := svc.ParseConfig([]byte(`payload = "SGk=`), "in.hcl")
			require.Nil(t, actualReturn)

			parseErr, ok := actualErr.(*ParseErr)
			require.True(t, ok)

			assert.NotEmpty(t, parseErr.Errs)
			assert.Contains(t, actualErr.Error(), "Failed to parse HCL, encountered:")
			assert.Contains(t, actualErr.Error(), "[in.hcl:1]")
		},
	)
}

func TestHclService_Fprint(t *testing.T) {
	t.Run(
		"it writes the HCL file to `output`",
		func(t *testing.T) {
			t.Parallel()

			svc := NewHclService()

			file := hclwrite.NewEmptyFile()
			file.Body().SetAttributeValue("payload", cty.StringVal("SGk="))

			outputArg := &bytes.Buffer{}

			actualErr := svc.Fprint(outputArg, file)
			require.Nil(t, actualErr)

			assert.Equal(t, "payload = \"SGk=\"\n", outputArg.String())
		},
	)

	t.Run(
		"when writing to `output` fails, it returns error",
		func(t *testing.T) {
			t.Parallel()

			svc := NewHclService()

			file := hclwrite.NewEmptyFile()
			file.Body().SetAttributeValue("payload", cty.StringVal("SGk="))

			fakeErr := errors.New("fakeWriteError")

			outputArg := &fakeWriter{}
			outputArg.On("Write", mock.Anything).Return(0, fakeErr)

			actualErr := svc.Fprint(outputArg, file)

			assert.Equal(t, fakeErr, stacktrace.RootCause(actualErr))
			outputArg.AssertExpectations(t)
		},
	)
}
