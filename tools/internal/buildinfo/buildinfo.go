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

// Package buildinfo reports version information for the command line tools.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the build of the running binary.
type Info struct {
	Module   string
	Version  string // module version, empty for development builds
	Revision string // abbreviated VCS revision, if known
	Dirty    bool
}

// Read extracts the build information embedded by the Go toolchain.
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Info {
	res := Info{Module: info.Main.Path}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		res.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			res.Revision = s.Value
		case "vcs.modified":
			res.Dirty = s.Value == "true"
		}
	}
	if len(res.Revision) > 8 {
		res.Revision = res.Revision[:8]
	}
	return res
}

// Describe returns a short version string for a tool, e.g.
// "pdf-annot (seehuhn.de/go/pdfannot v0.1.0)".
func (info Info) Describe(toolName string) string {
	var v string
	switch {
	case info.Version != "":
		v = info.Version
	case info.Revision != "":
		v = info.Revision
		if info.Dirty {
			v += "+dirty"
		}
	default:
		return toolName
	}
	return toolName + " (" + info.Module + " " + v + ")"
}

// Short returns the version string for the running binary.
func Short(toolName string) string {
	return Read().Describe(toolName)
}
