// Package commands defines the horizons CLI and wires dependencies for subcommands.
//
// Commands
//
//   - ephemeris   Fetch a vector table for a body and print or save it
//   - naif        Look up a NAIF code or name, or list the bundled bodies
//
// # Implementation
//
// The root command loads .env and the environment configuration, then
// builds the designator table, Horizons client and ephemeris service before
// any subcommand runs. Flags on the root override the configured Horizons
// URL and timeout.
package commands
