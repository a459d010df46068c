package config

import (
	"github.com/confkit/confkit/pkg/tree"
	"github.com/confkit/confkit/pkg/types"
)

// Re-export commonly used types so most callers only need to import
// pkg/config.

// Core types.
type (
	Node          = tree.Node
	ChildIterator = tree.ChildIterator
	WalkFunc      = tree.WalkFunc
)

// Option and limit types.
type (
	ParseOptions = types.ParseOptions
	SaveOptions  = types.SaveOptions
	Limits       = types.Limits
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindName     = types.ErrKindName
	ErrKindNotFound = types.ErrKindNotFound
	ErrKindLimit    = types.ErrKindLimit
	ErrKindIO       = types.ErrKindIO
	ErrKindEncoding = types.ErrKindEncoding
)

// Sentinel errors.
var (
	ErrInvalidName         = types.ErrInvalidName
	ErrNotFound            = types.ErrNotFound
	ErrDepthExceeded       = types.ErrDepthExceeded
	ErrUnsupportedEncoding = types.ErrUnsupportedEncoding
)

// Helper re-exports.
var (
	IsKind        = types.IsKind
	ValidName     = tree.ValidName
	Walk          = tree.Walk
	DefaultLimits = types.DefaultLimits
	RelaxedLimits = types.RelaxedLimits
	StrictLimits  = types.StrictLimits
)
