// Package testing hosts a single toggle widget the way a widget tree would,
// so its behavior can be tested without a window or a real clock.
//
// # Quick Start
//
//	func TestCheckbox(t *testing.T) {
//	    tester := mtesting.NewTesterWithT(t, widgets.NewCheckbox("Accept"), false)
//	    tester.Click()
//	    require.True(t, tester.Value)
//	    require.NoError(t, tester.PumpAndSettle(time.Second))
//	}
//
// The tester tracks hover and focus, delivers the frame and timer callbacks
// the widget schedules, and replays host-side value changes through Update.
//
// # Snapshot Testing
//
// Compare what a widget paints against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/checkbox_checked.json")
//
// Update golden files with:
//
//	MATERIAL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import mtesting "github.com/go-drift/material/pkg/testing"
package testing
