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

package config

import (
	"github.com/palantir/stacktrace"
	"github.com/sumup-oss/go-pkgs/os"
	"gopkg.in/go-playground/validator.v9"

	"github.com/sumup-oss/b64/pkg/base64"
)

type hclDecoder interface {
	Decode(src []byte, out interface{}) error
}

type Config struct {
	Wrap     int    `hcl:"wrap" validate:"gte=0"`
	Headroom int    `hcl:"headroom" validate:"gte=0,lte=1048576"`
	Strict   bool   `hcl:"strict"`
	Format   string `hcl:"format" validate:"oneof=raw hcl ini"`
	Key      string `hcl:"key"`
	Section  string `hcl:"section"`
}

func Default() *Config {
	return &Config{
		Format: "raw",
	}
}

// Planner returns nil when no headroom is configured,
// so the engine only runs its default sizing.
func (c *Config) Planner() base64.CapacityPlanner {
	if c.Headroom == 0 {
		return nil
	}

	return base64.NewHeadroomPlanner(c.Headroom)
}

type Service struct {
	osExecutor os.OsExecutor
	hclDecoder hclDecoder
	validate   *validator.Validate
}

func NewConfigService(osExecutor os.OsExecutor, hclDecoder hclDecoder) *Service {
	return &Service{
		osExecutor: osExecutor,
		hclDecoder: hclDecoder,
		validate:   validator.New(),
	}
}

// ReadConfigAtPath overlays the HCL file at `path` on top of Default.
func (s *Service) ReadConfigAtPath(path string) (*Config, error) {
	content, err := s.osExecutor.ReadFile(path)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to read config file at %s", path)
	}

	cfg := Default()

	err = s.hclDecoder.Decode(content, cfg)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to decode HCL config file at %s", path)
	}

	return cfg, nil
}

func (s *Service) Validate(cfg *Config) error {
	err := s.validate.Struct(cfg)
	if err != nil {
		return stacktrace.Propagate(err, "invalid config")
	}

	return nil
}
