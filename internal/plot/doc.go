// Package plot defines the plot request model, validates user input, and
// synthesizes the final TikZ/PGFPlots document.
//
//   - [Request]: function plot or coordinate plot, one per run
//   - [ParseDomain], [ValidateOptions]: input validation with recoverable
//     errors suitable for re-prompting
//   - [ParseCoordinates]: "x,y;x,y" literal point lists
//   - [Document]: deterministic markup synthesis
package plot
