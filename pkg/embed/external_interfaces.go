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

package embed

import (
	"io"

	goIni "github.com/go-ini/ini"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/sumup-oss/b64/pkg/ini"
)

type hclService interface {
	ParseConfig(src []byte, filename string) (*hclsyntax.Body, error)
	Fprint(output io.Writer, file *hclwrite.File) error
}

type iniService interface {
	ReadIni(src []byte) (*goIni.File, error)
	ParseIniFileContents(file *goIni.File) *ini.Content
	WriteIni(output io.Writer, content *ini.Content) error
}
