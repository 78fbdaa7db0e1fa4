// Package sim is an in-memory host for the Growify cheat.
//
// It implements the city package's capability interfaces over a world.Grid
// so cheats can be run from the command line and in tests. A city is
// described by a YAML scenario:
//
//	name: Old Town
//	width: 16
//	depth: 16
//	occupants:
//	  - name: Corner Shop
//	    purpose: services
//	    zone: plopped
//	    lot: {x: 2, z: 2, width: 2, depth: 1}
package sim
