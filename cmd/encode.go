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

func NewEncodeCommand(
	osExecutor os.OsExecutor,
	b64Svc external_interfaces.Base64Service,
	embedSvc external_interfaces.EmbedService,
	configSvc external_interfaces.ConfigService,
) *cobra.Command {
	cmdInstance := &cobra.Command{
		Use:   "encode --in ./mysecret.bin --out ./mysecret.base64",
		Short: "Encode a file/value in base64",
		Long: "Encode a file/value in base64 using the standard alphabet with `=` padding. " +
			"Output can be wrapped at fixed width or embedded in HCL/INI documents.",
		RunE: func(cmdInstance *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmdInstance, configSvc)
			if err != nil {
				return stacktrace.Propagate(err, "failed to load configuration")
			}

			format, err := embed.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			if cfg.Wrap > 0 && format != embed.FormatRaw {
				return stacktrace.NewError("`--wrap` is only supported with `raw` format")
			}

			logger := newLogger(cmdInstance, osExecutor)
			defer logger.Sync() //nolint:errcheck

			inFileContent, err := cli.ReadInput(
				osExecutor,
				stringFlag(cmdInstance, inFlag),
				"Enter value to encode: ",
			)
			if err != nil {
				return err
			}

			encoded, err := b64Svc.Encode(inFileContent, cfg.Planner())
			if err != nil {
				return stacktrace.Propagate(err, "failed to base64 encode input")
			}

			logger.Debug(
				"encoded input",
				zap.Int("input_bytes", len(inFileContent)),
				zap.Int("output_bytes", len(encoded)),
				zap.Int("headroom", cfg.Headroom),
			)

			document, err := embedSvc.Wrap(format, cfg.Key, cfg.Section, encoded)
			if err != nil {
				return stacktrace.Propagate(err, "failed to embed encoded payload in %s format", format)
			}

			document, err = internalCli.WrapLines(document, cfg.Wrap)
			if err != nil {
				return err
			}

			return internalCli.WriteOut(
				osExecutor,
				stringFlag(cmdInstance, outFlag),
				"Encoded payload below:",
				document,
			)
		},
	}

	cmdInstance.PersistentFlags().String(
		inFlag,
		"",
		"Path to the input file.",
	)

	cmdInstance.PersistentFlags().String(
		outFlag,
		"",
		"Path to the output file, that's going to be encoded in base64.",
	)

	cmdInstance.PersistentFlags().Int(
		wrapFlag,
		0,
		"Wrap encoded output at this many characters per line. 0 disables wrapping, 76 matches MIME.",
	)

	addEmbedFlags(cmdInstance)

	return cmdInstance
}
