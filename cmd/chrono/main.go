// Command chrono inspects, shifts and describes points in time from the
// command line.
//
//	chrono at "2017-01-01 12:00:00" --tz Bucharest
//	chrono shift now "1 day + 12 hours"
//	chrono human "2017-01-01" "2018-08-08 10:01:02"
//
// Defaults come from CHRONO_* environment variables and an optional .env
// file; flags win over both.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCommand(&app{}).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
