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
	"github.com/palantir/stacktrace"
	"github.com/spf13/cobra"
	"github.com/sumup-oss/go-pkgs/os"
	"go.uber.org/zap"

	"github.com/sumup-oss/b64/cli"
	"github.com/sumup-oss/b64/cmd/external_interfaces"
	internalCli "github.com/sumup-oss/b64/internal/cli"
	"github.com/sumup-oss/b64/pkg/embed"
)

func NewDecodeCommand(
	osExecutor os.OsExecutor,
	b64Svc external_interfaces.Base64Service,
	strictB64Svc external_interfaces.Base64Service,
	embedSvc external_interfaces.EmbedService,
	configSvc external_interfaces.ConfigService,
) *cobra.Command {
	cmdInstance := &cobra.Command{
		Use:   "decode --in ./mysecret.base64 --out ./mysecret.bin",
		Short: "Decode a base64 file/value",
		Long: "Decode a base64 file/value encoded with the standard alphabet. " +
			"Line breaks are ignored, so wrapped payloads decode as is.",
		RunE: func(cmdInstance *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmdInstance, configSvc)
			if err != nil {
				return stacktrace.Propagate(err, "failed to load configuration")
			}

			format, err := embed.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			logger := newLogger(cmdInstance, osExecutor)
			defer logger.Sync() //nolint:errcheck

			inFileContent, err := cli.ReadInput(
				osExecutor,
				stringFlag(cmdInstance, inFlag),
				"Enter base64 value to decode: ",
			)
			if err != nil {
				return err
			}

			encoded, err := embedSvc.Unwrap(format, cfg.Key, cfg.Section, inFileContent)
			if err != nil {
				return stacktrace.Propagate(err, "failed to extract encoded payload from %s format", format)
			}

			encoded = internalCli.StripLineBreaks(encoded)

			svc := b64Svc
			if cfg.Strict {
				svc = strictB64Svc
			}

			decoded, err := svc.Decode(encoded, cfg.Planner())
			if err != nil {
				return stacktrace.Propagate(err, "failed to base64 decode input")
			}

			logger.Debug(
				"decoded input",
				zap.Int("input_bytes", len(encoded)),
				zap.Int("output_bytes", len(decoded)),
				zap.Bool("strict", cfg.Strict),
			)

			return internalCli.WriteOut(
				osExecutor,
				stringFlag(cmdInstance, outFlag),
				"Decoded payload below:",
				decoded,
			)
		},
	}

	cmdInstance.PersistentFlags().String(
		inFlag,
		"",
		"Path to the base64 encoded input file.",
	)

	cmdInstance.PersistentFlags().String(
		outFlag,
		"",
		"Path to the output file, that's going to contain the decoded content.",
	)

	cmdInstance.PersistentFlags().Bool(
		strictFlag,
		false,
		"Reject input whose length is not a multiple of 4 instead of dropping the trailing partial group.",
	)

	addEmbedFlags(cmdInstance)

	return cmdInstance
}
