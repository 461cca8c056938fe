package app

import (
	"github.com/civicdata/goldenrecord/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface.
// Commands depend on the shared interface; this alias keeps the app
// package usable as a drop-in for it.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
