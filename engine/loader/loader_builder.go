package loader

// LoaderBuilderOption is a functional option for configuring a Loader during construction.
type LoaderBuilderOption func(*loaderImpl)

// WithBaseDir sets the directory external buffer URIs resolve against when
// loading from a reader. Loading from a path uses the file's own directory.
//
// Parameters:
//   - dir: the base directory
//
// Returns:
//   - LoaderBuilderOption: functional option to set the base directory
func WithBaseDir(dir string) LoaderBuilderOption {
	return func(l *loaderImpl) {
		l.baseDir = dir
	}
}
