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

package main

import (
	"fmt"

	"github.com/sumup-oss/go-pkgs/os"

	"github.com/sumup-oss/b64/cmd"
	"github.com/sumup-oss/b64/pkg/base64"
	"github.com/sumup-oss/b64/pkg/hcl"
	"github.com/sumup-oss/b64/pkg/ini"
)

func main() {
	// NOTE: This is pretty much what a dependency injection container would do.
	// It's important to initialize and pass only the most generic services
	// that do not change between business logic implementation.
	osExecutor := &os.RealOsExecutor{}
	base64Svc := base64.NewBase64Service()
	strictBase64Svc := base64.NewStrictBase64Service()
	hclSvc := hcl.NewHclService()
	iniSvc := ini.NewIniService()

	err := cmd.NewRootCmd(
		osExecutor,
		base64Svc,
		strictBase64Svc,
		hclSvc,
		iniSvc,
	).Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(osExecutor.Stderr(), err.Error())
	osExecutor.Exit(1)
}
