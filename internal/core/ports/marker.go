package ports

// MarkerStore reads and writes the configuration marker.
//
//go:generate go run go.uber.org/mock/mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks
type MarkerStore interface {
	// Fresh reports whether the marker exists and is not older than the script.
	Fresh(markerPath, scriptPath string) (bool, error)

	// Write creates or replaces the marker for the given script.
	Write(markerPath, scriptPath string) error
}
