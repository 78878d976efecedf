package config

type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidValue marks a setting outside its allowed range.
	ErrInvalidValue = constError("invalid config value")

	// ErrUnsupportedVersion marks a config written for an incompatible schema.
	ErrUnsupportedVersion = constError("unsupported config version")

	// ErrUnknownKey marks a key that config get/set does not recognize.
	ErrUnknownKey = constError("unknown config key")
)
