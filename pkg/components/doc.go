// Package components provides the themeable component kit: buttons, labels,
// text fields, pickers, group boxes, and the FlexibleStack flow container,
// plus the layout plumbing (Padding, SizedBox, Container) they compose with.
//
// Every component is a render box implementing the pkg/layout protocol.
// Constructors take a configuration struct and an explicit theme.Theme:
//
//	th := theme.DefaultLightTheme()
//	submit := components.NewButton(components.ButtonConfig{
//	    Label:     "Submit",
//	    OnPressed: handleSubmit,
//	}, th)
//
// Styling resolves once at construction: the component reads its theme
// data (theme.ButtonThemeData and so on, or the override installed for
// its type) and keeps the resolved values. Swapping themes means
// rebuilding components, which keeps them free of ambient lookups.
//
// Interactive components participate in hit testing. Buttons implement
// layout.TapTarget; the Picker implements layout.PressTarget so pointer
// position maps to an option.
package components
