// Package testing provides a render testing harness for DesignSystem.
//
// # Quick Start
//
// Create a tester, mount a component, and make assertions:
//
//	func TestSubmitButton(t *testing.T) {
//	    tester := kittest.NewRenderTester()
//	    th := theme.DefaultLightTheme()
//
//	    pressed := false
//	    button := components.NewButton(components.ButtonConfig{
//	        Label:     "Submit",
//	        OnPressed: func() { pressed = true },
//	    }, th)
//	    tester.Mount(button)
//
//	    if err := tester.TapAt(kittest.CenterOf(button)); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !pressed {
//	        t.Error("expected the tap to reach the button")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare render tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/snapshots/submit_button.json")
//
// Update snapshots with:
//
//	DESIGNSYSTEM_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import kittest "github.com/jcholuj/DesignSystem/pkg/testing"
package testing
