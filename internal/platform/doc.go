// Package platform abstracts the two OS capability calls the report needs
// besides /proc: the host identity query (uname) and the clock-tick rate
// used to convert /proc/stat CPU times to seconds.
//
// # Usage
//
//	p, err := platform.NewPlatform()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, _ := p.Host().Identity()
//	hz, _ := p.Clock().TicksPerSecond()
//	fmt.Printf("%s %s (%d Hz)\n", id.Sysname, id.Release, hz)
//
// Tests substitute [StaticHost] and [FixedClock] for live kernel state.
//
// # Supported Platforms
//
// Only Linux is supported; NewPlatform returns an error elsewhere.
package platform
