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

package cmd

import (
	"io"

	"github.com/palantir/stacktrace"
	"github.com/spf13/cobra"
	"github.com/sumup-oss/go-pkgs/os"
	"go.uber.org/zap"

	"github.com/sumup-oss/b64/cmd/external_interfaces"
	"github.com/sumup-oss/b64/internal/log"
	"github.com/sumup-oss/b64/pkg/config"
)

const (
	configFlag   = "config"
	verboseFlag  = "verbose"
	inFlag       = "in"
	outFlag      = "out"
	wrapFlag     = "wrap"
	headroomFlag = "headroom"
	strictFlag   = "strict"
	formatFlag   = "format"
	keyFlag      = "key"
	sectionFlag  = "section"
)

// loadConfig reads the `--config` file, if any,
// and overrides it with every flag explicitly set on `cmdInstance`.
func loadConfig(
	cmdInstance *cobra.Command,
	configSvc external_interfaces.ConfigService,
) (*config.Config, error) {
	cfg := config.Default()

	configPath := stringFlag(cmdInstance, configFlag)
	if configPath != "" {
		var err error

		cfg, err = configSvc.ReadConfigAtPath(configPath)
		if err != nil {
			return nil, stacktrace.Propagate(err, "failed to read specified config file")
		}
	}

	flags := cmdInstance.Flags()

	if flags.Changed(wrapFlag) {
		cfg.Wrap, _ = flags.GetInt(wrapFlag)
	}

	if flags.Changed(headroomFlag) {
		cfg.Headroom, _ = flags.GetInt(headroomFlag)
	}

	if flags.Changed(strictFlag) {
		cfg.Strict, _ = flags.GetBool(strictFlag)
	}

	if flags.Changed(formatFlag) {
		cfg.Format, _ = flags.GetString(formatFlag)
	}

	if flags.Changed(keyFlag) {
		cfg.Key, _ = flags.GetString(keyFlag)
	}

	if flags.Changed(sectionFlag) {
		cfg.Section, _ = flags.GetString(sectionFlag)
	}

	err := configSvc.Validate(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// NOTE: Only touch stderr when asked to,
// so that plain runs keep stderr empty.
func newLogger(cmdInstance *cobra.Command, osExecutor os.OsExecutor) *zap.Logger {
	var output io.Writer

	verbose, err := cmdInstance.Flags().GetBool(verboseFlag)
	if err == nil && verbose {
		output = osExecutor.Stderr()
	}

	return log.New(output)
}

// NOTE: Persistent flags of the root are unknown
// when a command runs on its own, e.g. in tests.
func stringFlag(cmdInstance *cobra.Command, name string) string {
	value, err := cmdInstance.Flags().GetString(name)
	if err != nil {
		return ""
	}

	return value
}

func addEmbedFlags(cmdInstance *cobra.Command) {
	cmdInstance.PersistentFlags().String(
		formatFlag,
		"raw",
		"Document format the payload is embedded in. One of `raw`, `hcl`, `ini`.",
	)

	cmdInstance.PersistentFlags().String(
		keyFlag,
		"",
		"HCL attribute or INI key holding the payload. Required for `hcl` and `ini` formats.",
	)

	cmdInstance.PersistentFlags().String(
		sectionFlag,
		"",
		"HCL block or INI section holding the payload. Defaults to top-level / DEFAULT.",
	)

	cmdInstance.PersistentFlags().Int(
		headroomFlag,
		0,
		"Extra bytes to allocate on top of the computed output capacity.",
	)
}
