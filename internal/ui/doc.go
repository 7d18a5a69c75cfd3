// Package ui provides terminal output formatting for cc2olx-run.
//
// This package handles all user-facing status output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information, and Debug lines behind Verbose
//   - A yes/no prompt
//
// Status output goes to ui.Out (defaults to os.Stderr) so that stdout
// carries only the converter's own output. Both ui.Out and ui.In can be
// replaced for testing.
//
// Example usage:
//
//	ui.Header()
//	ui.Info("Remapped %d path argument(s)", n)
//	ui.Success("Image built: %s", image)
//	ui.Footer()
//
//	if ui.AskYesNo("Build it now?", true) {
//	    // build
//	}
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
