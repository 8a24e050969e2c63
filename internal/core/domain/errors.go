package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned when a source role or the output target cannot be resolved to a path.
	ErrConfiguration = zerr.New("configuration error")

	// ErrNotConfigured is returned when targets are requested or a build is started before Configure.
	ErrNotConfigured = zerr.New("tech is not configured")

	// ErrNoLocale is returned when neither the tech nor the project declares a locale.
	ErrNoLocale = zerr.New("no locale configured and project declares no languages")

	// ErrInvalidLocale is returned when a locale identifier is not a valid BCP 47 tag.
	ErrInvalidLocale = zerr.New("invalid locale identifier")

	// ErrUnknownTarget is returned when a target is not produced by the tech it was requested from.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUpstreamUnavailable is returned when a declared source dependency never materializes.
	ErrUpstreamUnavailable = zerr.New("upstream source unavailable")

	// ErrDataSyntax is returned when the data artifact fails to evaluate.
	ErrDataSyntax = zerr.New("data artifact syntax error")

	// ErrCatalogSyntax is returned when a locale catalog fails to evaluate.
	ErrCatalogSyntax = zerr.New("locale catalog syntax error")

	// ErrRender is returned when the template fails to render a target.
	ErrRender = zerr.New("render failed")

	// ErrIO is returned when reading or writing a target file fails.
	ErrIO = zerr.New("file operation failed")

	// ErrPartialFailure is returned when some targets of an invocation failed while others succeeded.
	ErrPartialFailure = zerr.New("build finished with failed targets")

	// ErrTargetUnsettled is reported for a target a build left without an outcome.
	ErrTargetUnsettled = zerr.New("target was not settled")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrTargetRejected is returned to dependents when a target they wait for has failed.
	ErrTargetRejected = zerr.New("target rejected")

	// ErrTargetAlreadySettled is returned when a target is resolved or rejected twice.
	ErrTargetAlreadySettled = zerr.New("target already settled")

	// ErrTargetAlreadyDeclared is returned when two techs declare the same output target.
	ErrTargetAlreadyDeclared = zerr.New("target already declared")

	// ErrNodeNotFound is returned when a requested node is not declared in the project.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrStoreCreateFailed is returned when the fingerprint store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create fingerprint store directory")

	// ErrStoreReadFailed is returned when a fingerprint record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read fingerprint record")

	// ErrStoreUnmarshalFailed is returned when a fingerprint record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal fingerprint record")

	// ErrStoreMarshalFailed is returned when a fingerprint record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal fingerprint record")

	// ErrStoreWriteFailed is returned when a fingerprint record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint record")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no project file exists in the working directory or its parents.
	ErrConfigNotFound = zerr.New("could not find i18nhtml.yaml")

	// ErrInvalidNodePath is returned when a node path is absolute or escapes the project root.
	ErrInvalidNodePath = zerr.New("node path must be relative and inside the project root")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFailedToCleanCache is returned when the fingerprint cache cannot be removed.
	ErrFailedToCleanCache = zerr.New("failed to clean fingerprint cache")
)
