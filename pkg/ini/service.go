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
	"io"

	"github.com/go-ini/ini"
	"github.com/palantir/stacktrace"
)

const (
	// NOTE: Default section name used by the INI parser.
	DefaultSectionName = ini.DefaultSection
)

type Service struct{}

func NewIniService() *Service {
	return &Service{}
}

func (s *Service) ReadIni(src []byte) (*ini.File, error) {
	cfg, err := ini.LoadSources(
		ini.LoadOptions{
			AllowPythonMultilineValues: true,
			SpaceBeforeInlineComment:   true,
		},
		src,
	)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseIniFileContents flattens `file` into Content.
// The default section is only kept when it has keys.
func (s *Service) ParseIniFileContents(file *ini.File) *Content {
	iniContent := NewIniContent()

	for _, section := range file.Sections() {
		if section.Name() == DefaultSectionName && len(section.Keys()) == 0 {
			continue
		}

		iniSection := NewIniSection(section.Name())

		for _, sectionKey := range section.Keys() {
			iniSection.Values = append(
				iniSection.Values,
				NewIniSectionValue(
					sectionKey.Name(),
					sectionKey.Value(),
				),
			)
		}

		iniContent.AddSection(iniSection)
	}

	return iniContent
}

func (s *Service) WriteIni(output io.Writer, content *Content) error {
	file := ini.Empty()

	for name, section := range content.SectionsByName {
		iniSection, err := file.NewSection(name)
		if err != nil {
			return stacktrace.Propagate(err, "failed to create INI section %s", name)
		}

		for _, value := range section.Values {
			_, err = iniSection.NewKey(value.Key, value.Value)
			if err != nil {
				return stacktrace.Propagate(
					err,
					"failed to create INI key %s in section %s",
					value.Key,
					name,
				)
			}
		}
	}

	_, err := file.WriteTo(output)
	if err != nil {
		return stacktrace.Propagate(err, "failed to write INI")
	}

	return nil
}
