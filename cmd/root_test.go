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
	"bytes"
	"fmt"
	stdOs "os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumup-oss/go-pkgs/os"
	"github.com/sumup-oss/go-pkgs/os/ostest"
	"github.com/sumup-oss/go-pkgs/testutils"

	"github.com/sumup-oss/b64/pkg/base64"
	"github.com/sumup-oss/b64/pkg/hcl"
	"github.com/sumup-oss/b64/pkg/ini"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	osExecutor := ostest.NewFakeOsExecutor(t)
	base64Svc := base64.NewBase64Service()
	strictBase64Svc := base64.NewStrictBase64Service()
	hclSvc := hcl.NewHclService()
	iniSvc := ini.NewIniService()
	actual := NewRootCmd(osExecutor, base64Svc, strictBase64Svc, hclSvc, iniSvc)

	assert.Equal(t, true, actual.SilenceUsage)
	assert.Equal(t, true, actual.SilenceErrors)
	assert.Equal(t, "b64", actual.Use)
	assert.Equal(t, "Base64 encode/decode cli utility", actual.Short)
	assert.Equal(t, "Base64 encode/decode with pluggable output capacity planning and HCL/INI embedding", actual.Long)

	var subcommands []string
	for _, subcommand := range actual.Commands() {
		subcommands = append(subcommands, subcommand.Name())
	}

	assert.Equal(t, []string{"decode", "encode", "version"}, subcommands)
	assert.NotNil(t, actual.PersistentFlags().Lookup("config"))
	assert.NotNil(t, actual.PersistentFlags().Lookup("verbose"))
}

func TestRootCmd_Execute(t *testing.T) {
	t.Parallel()

	outputBuff := &bytes.Buffer{}

	osExecutor := ostest.NewFakeOsExecutor(t)
	osExecutor.On("Stdout").Return(outputBuff)

	base64Svc := base64.NewBase64Service()
	strictBase64Svc := base64.NewStrictBase64Service()
	hclSvc := hcl.NewHclService()
	iniSvc := ini.NewIniService()
	cmdInstance := NewRootCmd(osExecutor, base64Svc, strictBase64Svc, hclSvc, iniSvc)

	_, err := testutils.RunCommandInSameProcess(
		cmdInstance,
		[]string{},
		outputBuff,
	)

	assert.Equal(t, "Use `--help` to see available commands", outputBuff.String())
	assert.Nil(t, err)

	osExecutor.AssertExpectations(t)
}

func TestRootCmd_ExecuteEncode(t *testing.T) {
	t.Run(
		"with `config` flag specified, it applies the config file and lets flags override it",
		func(t *testing.T) {
			t.Parallel()

			tmpDir := testutils.TestDir(t, "b64")
			defer stdOs.RemoveAll(tmpDir)

			outputBuff := &bytes.Buffer{}
			realOsExecutor := &os.RealOsExecutor{}

			configPath := filepath.Join(tmpDir, "b64.hcl")
			inPath := filepath.Join(tmpDir, "in.raw")
			outPath := filepath.Join(tmpDir, "out.ini")

			err := realOsExecutor.WriteFile(
				configPath,
				[]byte(`
format  = "ini"
key     = "payload"
section = "secrets"
`),
				0644,
			)
			require.Nil(t, err)

			err = realOsExecutor.WriteFile(inPath, []byte("Hi"), 0644)
			require.Nil(t, err)

			cmdInstance := NewRootCmd(
				realOsExecutor,
				base64.NewBase64Service(),
				base64.NewStrictBase64Service(),
				hcl.NewHclService(),
				ini.NewIniService(),
			)

			_, err = testutils.RunCommandInSameProcess(
				cmdInstance,
				[]string{
					"encode",
					fmt.Sprintf("--config=%s", configPath),
					fmt.Sprintf("--in=%s", inPath),
					fmt.Sprintf("--out=%s", outPath),
					"--key=value",
				},
				outputBuff,
			)
			require.Nil(t, err)

			actualContent, err := realOsExecutor.ReadFile(outPath)
			require.Nil(t, err)

			assert.Contains(t, string(actualContent), "[secrets]")
			assert.Contains(t, string(actualContent), "value = SGk=")
			assert.NotContains(t, string(actualContent), "payload")
		},
	)

	t.Run(
		"with `config` flag pointing at a missing file, it returns error",
		func(t *testing.T) {
			t.Parallel()

			outputBuff := &bytes.Buffer{}

			cmdInstance := NewRootCmd(
				&os.RealOsExecutor{},
				base64.NewBase64Service(),
				base64.NewStrictBase64Service(),
				hcl.NewHclService(),
				ini.NewIniService(),
			)

			_, err := testutils.RunCommandInSameProcess(
				cmdInstance,
				[]string{"encode", "--config=/nonexistent/b64.hcl"},
				outputBuff,
			)

			assert.Contains(t, err.Error(), "failed to read specified config file")
		},
	)

	t.Run(
		"with `verbose` flag specified, it writes diagnostic logs to stderr",
		func(t *testing.T) {
			t.Parallel()

			outputBuff := &bytes.Buffer{}
			stderrBuff := &bytes.Buffer{}

			osExecutor := ostest.NewFakeOsExecutor(t)
			osExecutor.On("Stdout").Return(outputBuff)
			osExecutor.On("Stderr").Return(stderrBuff)
			osExecutor.On("ReadFile", "/tmp/example.in").Return([]byte("Hi"), nil)

			cmdInstance := NewRootCmd(
				osExecutor,
				base64.NewBase64Service(),
				base64.NewStrictBase64Service(),
				hcl.NewHclService(),
				ini.NewIniService(),
			)

			_, err := testutils.RunCommandInSameProcess(
				cmdInstance,
				[]string{"encode", "--verbose", "--in=/tmp/example.in"},
				outputBuff,
			)
			require.Nil(t, err)

			assert.Equal(t, "Encoded payload below:\nSGk=\n", outputBuff.String())
			assert.Contains(t, stderrBuff.String(), "encoded input")
			assert.Contains(t, stderrBuff.String(), `"output_bytes": 4`)

			osExecutor.AssertExpectations(t)
		},
	)
}
