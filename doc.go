// Copyright 2025 sixelcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sixelcore implements the core byte-stream parser and pixel
// rasterizer for the SIXEL terminal graphics encoding.
//
// SIXEL packs a vertical column of six pixels ("a sixel") into a single
// printable ASCII byte. A decoder turns a SIXEL byte stream into a stream
// of six-pixel-tall "bands", one per line of sixel data terminated by a
// Graphics Next Line introducer.
//
// The Core type implements the core: the state machine that parses the
// byte stream and the rasterizer that paints bands. Core does not read
// input from anywhere (the caller feeds byte chunks directly) and does not
// assemble bands into a final image (a BandHandler callback receives each
// band as it completes). The package-level Decode function is a small
// host built on Core that reads an io.Reader and assembles the bands into
// an *image.RGBA.
//
// Low-level, incremental use:
//
//	core, err := sixelcore.NewCore(sixelcore.Options{
//	    FillColor: color.RGBA{A: 0xFF},
//	    BandHandler: func(width int, rows [6][]color.RGBA) error {
//	        // assemble rows into an image.RGBA, write to a file, etc.
//	        return nil
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := core.Decode(chunk); err != nil {
//	    log.Fatal(err)
//	}
//
// Convenience, whole-stream use:
//
//	img, err := sixelcore.Decode(r, sixelcore.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The package registers itself with the standard image package:
//
//	import _ "github.com/go-sixel/sixelcore"
//	img, _, err := image.Decode(r)
package sixelcore
