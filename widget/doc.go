// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of a tag list: the ordered chips,
// their selection and per chip style, and the measured sizes the flow
// layout needs. Widgets contain persistent state and dispatch user
// events; host packages such as raster and console draw them.
package widget
