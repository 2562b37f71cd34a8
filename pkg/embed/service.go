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

// Package embed places base64 payloads into HCL or INI documents
// and reads them back out.
package embed

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/palantir/stacktrace"
	"github.com/zclconf/go-cty/cty"

	"github.com/sumup-oss/b64/pkg/ini"
)

type Format string

const (
	FormatRaw Format = "raw"
	FormatHCL Format = "hcl"
	FormatINI Format = "ini"

	hclFilename = "payload.hcl"
)

var (
	Formats = []Format{FormatRaw, FormatHCL, FormatINI}

	ErrEmptyKey          = errors.New("key is required for hcl and ini formats")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrAttributeNotText  = errors.New("attribute is not a string")
	ErrSectionNotFound   = errors.New("section not found")
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnknownFormat     = fmt.Errorf("unknown format. it must be one of %v", Formats)
)

func ParseFormat(value string) (Format, error) {
	for _, format := range Formats {
		if string(format) == value {
			return format, nil
		}
	}

	return "", ErrUnknownFormat
}

type Service struct {
	hclSvc hclService
	iniSvc iniService
}

func NewEmbedService(hclSvc hclService, iniSvc iniService) *Service {
	return &Service{
		hclSvc: hclSvc,
		iniSvc: iniSvc,
	}
}

// Wrap places `encoded` in a document of `format`.
// For hcl a non-empty `section` becomes a block, for ini a section.
func (s *Service) Wrap(format Format, key, section string, encoded []byte) ([]byte, error) {
	switch format {
	case FormatRaw:
		return encoded, nil
	case FormatHCL:
		if key == "" {
			return nil, ErrEmptyKey
		}

		return s.wrapHCL(key, section, encoded)
	case FormatINI:
		if key == "" {
			return nil, ErrEmptyKey
		}

		return s.wrapINI(key, section, encoded)
	}

	return nil, ErrUnknownFormat
}

// Unwrap is the reverse of Wrap.
func (s *Service) Unwrap(format Format, key, section string, document []byte) ([]byte, error) {
	switch format {
	case FormatRaw:
		return bytes.TrimSpace(document), nil
	case FormatHCL:
		if key == "" {
			return nil, ErrEmptyKey
		}

		return s.unwrapHCL(key, section, document)
	case FormatINI:
		if key == "" {
			return nil, ErrEmptyKey
		}

		return s.unwrapINI(key, section, document)
	}

	return nil, ErrUnknownFormat
}

func (s *Service) wrapHCL(key, section string, encoded []byte) ([]byte, error) {
	hclFile := hclwrite.NewEmptyFile()

	body := hclFile.Body()
	if section != "" {
		body = body.AppendNewBlock(section, nil).Body()
	}

	body.SetAttributeValue(key, cty.StringVal(string(encoded)))

	var buf bytes.Buffer

	err := s.hclSvc.Fprint(&buf, hclFile)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to print HCL document")
	}

	return buf.Bytes(), nil
}

func (s *Service) unwrapHCL(key, section string, document []byte) ([]byte, error) {
	body, err := s.hclSvc.ParseConfig(document, hclFilename)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to parse HCL document")
	}

	if section != "" {
		body, err = findBlockBody(body, section)
		if err != nil {
			return nil, err
		}
	}

	attr, ok := body.Attributes[key]
	if !ok {
		return nil, stacktrace.Propagate(ErrAttributeNotFound, "attribute `%s`", key)
	}

	value, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, stacktrace.Propagate(diags, "failed to evaluate attribute `%s`", key)
	}

	if value.IsNull() || !value.Type().Equals(cty.String) {
		return nil, stacktrace.Propagate(ErrAttributeNotText, "attribute `%s`", key)
	}

	return []byte(strings.TrimSpace(value.AsString())), nil
}

func findBlockBody(body *hclsyntax.Body, blockType string) (*hclsyntax.Body, error) {
	for _, block := range body.Blocks {
		if block.Type == blockType {
			return block.Body, nil
		}
	}

	return nil, stacktrace.Propagate(ErrSectionNotFound, "block `%s`", blockType)
}

func (s *Service) wrapINI(key, section string, encoded []byte) ([]byte, error) {
	if section == "" {
		section = ini.DefaultSectionName
	}

	iniSection := ini.NewIniSection(section)
	iniSection.Values = append(iniSection.Values, ini.NewIniSectionValue(key, string(encoded)))

	content := ini.NewIniContent()
	content.AddSection(iniSection)

	var buf bytes.Buffer

	err := s.iniSvc.WriteIni(&buf, content)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to write INI document")
	}

	return buf.Bytes(), nil
}

func (s *Service) unwrapINI(key, section string, document []byte) ([]byte, error) {
	if section == "" {
		section = ini.DefaultSectionName
	}

	file, err := s.iniSvc.ReadIni(document)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to parse INI document")
	}

	content := s.iniSvc.ParseIniFileContents(file)

	if _, ok := content.SectionsByName[section]; !ok {
		return nil, stacktrace.Propagate(ErrSectionNotFound, "section `%s`", section)
	}

	value, ok := content.Lookup(section, key)
	if !ok {
		return nil, stacktrace.Propagate(ErrKeyNotFound, "key `%s` in section `%s`", key, section)
	}

	return []byte(strings.TrimSpace(value)), nil
}
