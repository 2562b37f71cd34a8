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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sumup-oss/go-pkgs/os"

	"github.com/sumup-oss/b64/pkg/base64"
	"github.com/sumup-oss/b64/pkg/config"
	"github.com/sumup-oss/b64/pkg/embed"
	"github.com/sumup-oss/b64/pkg/hcl"
	"github.com/sumup-oss/b64/pkg/ini"
)

func NewRootCmd(
	osExecutor os.OsExecutor,
	base64Svc *base64.Service,
	strictBase64Svc *base64.Service,
	hclSvc *hcl.Service,
	iniSvc *ini.Service,
) *cobra.Command {
	cmdInstance := &cobra.Command{
		Use:   "b64",
		Short: "Base64 encode/decode cli utility",
		Long:  "Base64 encode/decode with pluggable output capacity planning and HCL/INI embedding",
		// NOTE: Silence errors and usage since it'll log twice,
		// due to bad cobra API design and the fact that `RunE` actually returns the error
		// that it's going to log either way.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(osExecutor.Stdout(), "Use `--help` to see available commands")
			return nil
		},
	}

	cmdInstance.PersistentFlags().String(
		configFlag,
		"",
		"Path to HCL config file with `wrap`, `headroom`, `strict`, `format`, `key` and `section` defaults.",
	)

	cmdInstance.PersistentFlags().Bool(
		verboseFlag,
		false,
		"Write diagnostic logs to stderr.",
	)

	embedSvc := embed.NewEmbedService(hclSvc, iniSvc)
	configSvc := config.NewConfigService(osExecutor, hclSvc)

	cmdInstance.AddCommand(
		NewVersionCmd(osExecutor),
		NewEncodeCommand(osExecutor, base64Svc, embedSvc, configSvc),
		NewDecodeCommand(osExecutor, base64Svc, strictBase64Svc, embedSvc, configSvc),
	)

	return cmdInstance
}
