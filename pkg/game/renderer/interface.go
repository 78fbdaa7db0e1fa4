// Package renderer defines how cheat dialogs and the zone map are presented.
package renderer

import (
	"growify/pkg/engine/world"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCaption
	StyleMessage
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleResidential
	StyleCommercial
	StyleAgriculture
	StyleIndustrial
	StylePlopped
	StyleSpecial
)

// Renderer defines the interface for presentation backends
type Renderer interface {
	// Init initializes the renderer (colors, markup, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowDialog displays a modal message with a caption
	// It implements city.Dialog.
	ShowDialog(message, caption string)

	// RenderZoneMap draws every tract of the zone grid
	RenderZoneMap(grid *world.Grid)
}
