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
	"errors"
	"io"

	"github.com/hashicorp/hcl"
	hclv2 "github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/palantir/stacktrace"
)

var errUnexpectedBody = errors.New("HCL file body is not native syntax")

type Service struct{}

func NewHclService() *Service {
	return &Service{}
}

// Decode decodes HCL v1 `src` into `out`, respecting `hcl` struct tags.
func (s *Service) Decode(src []byte, out interface{}) error {
	return hcl.Unmarshal(src, out)
}

// ParseConfig parses native HCL v2 syntax.
// Error diagnostics are returned as *ParseErr.
func (s *Service) ParseConfig(src []byte, filename string) (*hclsyntax.Body, error) {
	file, diags := hclsyntax.ParseConfig(
		src,
		filename,
		hclv2.Pos{Line: 1, Column: 1, Byte: 0},
	)
	if diags.HasErrors() {
		return nil, NewParseErrFromDiagnostics(diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errUnexpectedBody
	}

	return body, nil
}

func (s *Service) Fprint(output io.Writer, file *hclwrite.File) error {
	_, err := file.WriteTo(output)
	if err != nil {
		return stacktrace.Propagate(err, "failed to write HCL")
	}

	return nil
}
