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

package test

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/stretchr/testify/mock"
)

type MockHclService struct {
	mock.Mock
}

func (m *MockHclService) ParseConfig(src []byte, filename string) (*hclsyntax.Body, error) {
	args := m.Called(src, filename)
	returnValue := args.Get(0)
	err := args.Error(1)

	if returnValue == nil {
		return nil, err
	}

	return returnValue.(*hclsyntax.Body), err
}

func (m *MockHclService) Fprint(output io.Writer, file *hclwrite.File) error {
	args := m.Called(output, file)
	return args.Error(0)
}
