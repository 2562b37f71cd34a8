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

package external_interfaces

import (
	"github.com/sumup-oss/b64/pkg/base64"
	"github.com/sumup-oss/b64/pkg/config"
	"github.com/sumup-oss/b64/pkg/embed"
)

type Base64Service interface {
	Encode(input []byte, planner base64.CapacityPlanner) ([]byte, error)
	Decode(input []byte, planner base64.CapacityPlanner) ([]byte, error)
}

type EmbedService interface {
	Wrap(format embed.Format, key, section string, encoded []byte) ([]byte, error)
	Unwrap(format embed.Format, key, section string, document []byte) ([]byte, error)
}

type ConfigService interface {
	ReadConfigAtPath(path string) (*config.Config, error)
	Validate(cfg *config.Config) error
}
