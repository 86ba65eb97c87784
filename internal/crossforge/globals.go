package crossforge

import (
	"runtime"

	"github.com/gookit/color"
)

// Global variables
var (
	Debug      bool
	Verbose    bool
	OutputDir  string
	TargetRoot string
	BinName    string
	ConfigFile = "crossforge.conf"
	LockFile   = ".crossforge.lock"
	version    = "dev" //default version; overridden at build time
	arch       = runtime.GOARCH
	buildDate  = "unknown" // overridden at build time
	// Global executor (declared, to be assigned in Main)
	UserExec *Executor
)

// color helpers
var (
	colInfo    = color.Info // style provided by gookit/color
	colWarn    = color.Warn
	colError   = color.Error
	colSuccess = color.HEX("#1976D2")
	colArrow   = color.HEX("#FFEB3B")
	colNote    = color.Tag("notice")
)
