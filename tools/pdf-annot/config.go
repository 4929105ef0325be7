// seehuhn.de/go/pdfannot - construct annotation objects for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys.  The same names are used for the config file,
// for command line flags, and (upper case, with underscores and the
// PDFANNOT_ prefix) for environment variables.
const (
	cfgFormat      = "format"
	cfgUniqueNames = "unique-names"
	cfgIcon        = "icon"
)

const (
	formatCompact = "compact"
	formatPretty  = "pretty"
	formatAuto    = "auto"

	defaultFormat = formatAuto
)

func (a *app) loadConfig() error {
	v := a.v
	v.SetDefault(cfgFormat, defaultFormat)
	v.SetDefault(cfgUniqueNames, false)
	v.SetDefault(cfgIcon, "")

	v.SetEnvPrefix("PDFANNOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName("pdf-annot")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "pdf-annot"))
		}
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case errors.As(err, &notFound):
		a.log.Print("no configuration file found")
	case err != nil:
		return fmt.Errorf("read config: %w", err)
	default:
		a.log.Printf("using configuration from %s", v.ConfigFileUsed())
	}

	switch format := v.GetString(cfgFormat); format {
	case formatCompact, formatPretty, formatAuto:
		// pass
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
	return nil
}
