package runner

import (
	"github.com/projectdiscovery/gologger"
)

const banner = `
            __               __        _
 ___ __ __ / /  ___  ___ _  / /_ ___  (_)___  ___ _
(_-</ // // _ \/ _ \/ -_)/ __// _ \/ // _ \/ _ '/
/__/\_,_//_.__/_//_/\__/ \__// .__/_//_//_/\_, /
                            /_/          /___/
`

// version is set at build time via ldflags
var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tsubnet reachability sweeps\n\n")
}
