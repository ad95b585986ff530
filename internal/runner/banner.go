package runner

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rangeping/pkg/version"
)

const banner = `
                                        _             
   _ __ __ _ _ __   __ _  ___ _ __ (_)_ __   __ _ 
  | '__/ _' | '_ \ / _' |/ _ \ '_ \| | '_ \ / _' |
  | | | (_| | | | | (_| |  __/ |_) | | | | | (_| |
  |_|  \__,_|_| |_|\__, |\___| .__/|_|_| |_|\__, |
                   |___/     |_|            |___/ 
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\t%s\n\n", au.Bold(version.GetVersion()))
}
