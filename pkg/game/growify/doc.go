// Package growify turns the Growify cheat into zone changes.
//
// A cheat line such as "Growify Commercial High false" is parsed into a
// Request naming the zone category, the host zone type to grow into and
// whether converted lots become historical. A Pass then walks the city's
// buildings through an OccupantFilter and rezones every plopped lot it finds.
//
// Category and density words are matched by their first letter only, so
// "Growify c h" and "Growify Commercial High" are the same cheat.
package growify
