package commands

// ParseSelection exports parseSelection for testing.
var ParseSelection = parseSelection //nolint:gochecknoglobals // test export
