// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The tagview command lays out a list of tags as a tag cloud.

Usage:

	tagview [flags] [title...]

Each title argument adds a tag. Tags listed in the configuration file
come first.

By default the tags are printed to standard output as terminal chips
wrapped to the terminal width.

The -config flag names a YAML file with the list settings, the chip
style and initial tags.

The -width flag sets the width in columns. The default is the width of
the terminal, or 80 when standard output is not a terminal.

The -png flag writes the tags to a PNG file instead, -pngwidth pixels
wide and drawn at -scale pixels per dp.

The -i flag starts an interactive session. Use the arrow keys to move
the focus, space to select, x to remove, a to add a tag and q to quit.

The -v flag logs debug messages to standard error.
`
